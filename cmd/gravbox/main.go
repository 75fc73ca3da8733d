package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/aprato/gravbox/internal/export"
	"github.com/aprato/gravbox/internal/grav"
	"github.com/aprato/gravbox/internal/model"
	"github.com/aprato/gravbox/internal/progress"
	"github.com/aprato/gravbox/internal/store"
)

var (
	dataDir    string
	fieldFlag  string
	preset     string
	serial     bool
	workers    int
	skipChecks bool
	live       bool
	save       bool
	strict     bool
	svgCell    float64
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravbox",
		Short: "forward gravity modelling with right-rectangular prisms",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravbox", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute [model.yaml]",
		Short: "compute a gravitational field of a prism model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompute,
	}
	computeCmd.Flags().StringVar(&fieldFlag, "field", "", "override the model's field tag")
	computeCmd.Flags().StringVar(&preset, "preset", "", "use a bundled preset model")
	computeCmd.Flags().BoolVar(&serial, "serial", false, "disable the parallel point loop")
	computeCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = one per CPU)")
	computeCmd.Flags().BoolVar(&skipChecks, "skip-checks", false, "skip sanity checks on the model")
	computeCmd.Flags().BoolVar(&live, "live", false, "show a live progress bar")
	computeCmd.Flags().BoolVar(&save, "save", false, "persist the run in the data directory")

	plotCmd := &cobra.Command{
		Use:   "plot [run-id|model.yaml]",
		Short: "plot a result as an ascii profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list the supported field tags",
		RunE:  runFields,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [model.yaml]",
		Short: "check a model without computing",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat singular observation points as errors")

	benchCmd := &cobra.Command{
		Use:   "bench [model.yaml]",
		Short: "compare serial and parallel timings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&preset, "preset", "basin", "preset model to benchmark")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = one per CPU)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "export a run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run-id]",
		Short: "export a run as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run-id]",
		Short: "render a gridded run as an SVG heat map",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().Float64Var(&svgCell, "cell", 8, "cell size in SVG units")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list bundled preset models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range model.ListPresets() {
				doc := model.Presets[name]
				fmt.Printf("%s\t%s, %d prisms\n", name, doc.Field, len(doc.Prisms))
			}
			return nil
		},
	}

	rootCmd.AddCommand(computeCmd, plotCmd, fieldsCmd, validateCmd, benchCmd,
		listCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadModel(args []string) (*model.Document, error) {
	if len(args) > 0 {
		return model.Load(args[0])
	}
	if preset == "" {
		return nil, fmt.Errorf("need a model file or --preset")
	}
	doc, ok := model.Presets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s (available: %s)",
			preset, strings.Join(model.ListPresets(), ", "))
	}
	return doc, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	doc, err := loadModel(args)
	if err != nil {
		return err
	}

	field := doc.FieldTag()
	if fieldFlag != "" {
		field = grav.Field(fieldFlag)
	}

	prisms, densities := doc.PrismModel()
	points := doc.ObservationPoints()

	var warnings []grav.Warning
	cfg := grav.DefaultConfig()
	cfg.Parallel = !serial
	cfg.Workers = workers
	cfg.SkipChecks = skipChecks
	cfg.OnWarning = func(w grav.Warning) { warnings = append(warnings, w) }

	counter := &progress.Counter{}
	if live {
		cfg.Progress = true
		cfg.Sink = counter
	}

	start := time.Now()
	var result []float64
	var ferr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, ferr = grav.Forward(points, prisms, densities, field, cfg)
	}()
	if live {
		if err := progress.Bar(string(field), points.Len(), counter, done); err != nil {
			return err
		}
	}
	<-done
	if ferr != nil {
		return ferr
	}
	elapsed := time.Since(start)

	for _, w := range warnings {
		fmt.Println(warnStyle.Render("warning: " + w.String()))
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s [%s]", field, field.Unit())))
	fmt.Printf("prisms: %d  points: %d  elapsed: %v\n", len(prisms), points.Len(), elapsed)
	lo, hi := minMax(result)
	fmt.Printf("range: %.6g .. %.6g %s\n\n", lo, hi, field.Unit())

	printSample(points, result, field.Unit())

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		rows, cols := doc.Shape()
		meta := store.RunMetadata{
			Model:    doc.Name,
			Field:    string(field),
			Unit:     field.Unit(),
			Prisms:   len(prisms),
			GridRows: rows,
			GridCols: cols,
			Parallel: cfg.Parallel,
			Workers:  cfg.Workers,
			Elapsed:  elapsed.Seconds(),
		}
		runID, err := st.Save(meta, points, result)
		if err != nil {
			return err
		}
		fmt.Println(faintStyle.Render("saved as " + runID))
	}

	return nil
}

func printSample(points grav.Points, result []float64, unit string) {
	n := len(result)
	if n > 8 {
		n = 8
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "EASTING\tNORTHING\tUPWARD\tVALUE (%s)\n", unit)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%g\t%g\t%g\t%.6g\n",
			points.Easting[i], points.Northing[i], points.Upward[i], result[i])
	}
	w.Flush()
	if len(result) > n {
		fmt.Println(faintStyle.Render(fmt.Sprintf("... %d more points", len(result)-n)))
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	var values []float64
	caption := args[0]

	if strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml") {
		doc, err := model.Load(args[0])
		if err != nil {
			return err
		}
		prisms, densities := doc.PrismModel()
		result, err := grav.Forward(doc.ObservationPoints(), prisms, densities, doc.FieldTag(), grav.DefaultConfig())
		if err != nil {
			return err
		}
		values = result
		caption = fmt.Sprintf("%s (%s)", doc.Field, doc.FieldTag().Unit())
	} else {
		st := store.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		_, result, err := st.LoadResult(args[0])
		if err != nil {
			return err
		}
		values = result
		caption = fmt.Sprintf("%s (%s)", meta.Field, meta.Unit)
	}

	if len(values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tUNIT\tCLASS")
	for _, f := range grav.Fields() {
		class := "acceleration"
		switch {
		case f == grav.Potential:
			class = "potential"
		case f.Tensor():
			class = "tensor"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", f, f.Unit(), class)
	}
	return w.Flush()
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := model.Load(args[0])
	if err != nil {
		return err
	}
	prisms, densities := doc.PrismModel()
	points := doc.ObservationPoints()

	if err := grav.CheckPrisms(prisms); err != nil {
		return err
	}

	kept, _ := grav.DiscardNullPrisms(prisms, densities)
	if nulls := len(prisms) - len(kept); nulls > 0 {
		fmt.Println(faintStyle.Render(fmt.Sprintf("%d null prisms will be ignored", nulls)))
	}

	field := doc.FieldTag()
	if field.Tensor() {
		if strict {
			if err := grav.CheckSingularPoints(points, prisms, field); err != nil {
				return err
			}
		} else if l, m, found := grav.AnySingularPoint(points, prisms, field); found {
			fmt.Println(warnStyle.Render(
				grav.Warning{Field: field, Point: l, Prism: m}.String()))
		}
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("ok: %d prisms, %d points, field %s", len(prisms), points.Len(), field)))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	doc, err := loadModel(args)
	if err != nil {
		return err
	}
	prisms, densities := doc.PrismModel()
	points := doc.ObservationPoints()
	field := doc.FieldTag()

	fmt.Printf("benchmarking %s: %d prisms x %d points\n\n", field, len(prisms), points.Len())

	cfg := grav.DefaultConfig()
	cfg.Parallel = false
	start := time.Now()
	if _, err := grav.Forward(points, prisms, densities, field, cfg); err != nil {
		return err
	}
	serialTime := time.Since(start)

	cfg.Parallel = true
	cfg.Workers = workers
	start = time.Now()
	if _, err := grav.Forward(points, prisms, densities, field, cfg); err != nil {
		return err
	}
	parallelTime := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tTIME\tPOINTS/S")
	fmt.Fprintf(w, "serial\t%v\t%.0f\n", serialTime, float64(points.Len())/serialTime.Seconds())
	fmt.Fprintf(w, "parallel\t%v\t%.0f\n", parallelTime, float64(points.Len())/parallelTime.Seconds())
	w.Flush()
	fmt.Printf("\nspeedup: %.2fx\n", serialTime.Seconds()/parallelTime.Seconds())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tFIELD\tPOINTS\tPRISMS\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID, run.Model, run.Field, run.Points, run.Prisms,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, values, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, *meta, points, values)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	points, values, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	fmt.Println("easting,northing,upward,value")
	for i := range values {
		fmt.Printf("%g,%g,%g,%g\n", points.Easting[i], points.Northing[i], points.Upward[i], values[i])
	}
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.GridRows <= 1 {
		return fmt.Errorf("run %s is not a gridded model", meta.ID)
	}
	_, values, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	svg, err := export.HeatmapSVG(values, meta.GridRows, meta.GridCols, meta.Unit, svgCell)
	if err != nil {
		return err
	}
	out := filepath.Join(dataDir, meta.ID+".svg")
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Println("wrote " + out)
	return nil
}

func minMax(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
