package workout

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"time"
)

type CLI struct {
	writer   io.Writer
	service  *Service
	logger   *slog.Logger
	addr     string
	settings MapSettings
}

func NewCLI(w io.Writer, logger *slog.Logger, service *Service, addr string, settings MapSettings) *CLI {
	return &CLI{
		writer:   w,
		service:  service,
		logger:   logger,
		addr:     addr,
		settings: settings,
	}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.Usage()
		return nil
	}

	var err error
	switch args[0] {
	case "add":
		err = c.AddWorkout(ctx, args[1:])
	case "import":
		err = c.ImportWorkout(ctx, args[1:])
	case "list":
		err = c.ListWorkouts()
	case "export":
		err = c.ExportWorkout(args[1:])
	case "reset":
		err = c.Reset(ctx)
	case "api":
		err = c.RunAPI(ctx)
	default:
		c.Usage()
	}

	// The flag set has already printed usage.
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *CLI) Usage() {
	fmt.Fprintf(c.writer, "Usage: mapty [command] [flags]\n--help show this message\n\n"+
		"\tadd --type running|cycling --lat --lng --distance --duration [--cadence|--elevation]\n"+
		"\timport --gpx FILE --type running|cycling [--cadence|--elevation]\n"+
		"\tlist\n\texport --id ID\n\treset\n\tapi\n")
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.writer)
	fs.Usage = c.Usage
	return fs
}

func (c *CLI) AddWorkout(ctx context.Context, args []string) error {
	fs := c.flagSet("add")
	var kind string
	var in Input
	var lat, lng float64
	fs.StringVar(&kind, "type", string(KindRunning), "running or cycling")
	fs.Float64Var(&lat, "lat", math.NaN(), "latitude")
	fs.Float64Var(&lng, "lng", math.NaN(), "longitude")
	fs.Float64Var(&in.Distance, "distance", 0, "distance in km")
	fs.Float64Var(&in.Duration, "duration", 0, "duration in min")
	fs.Float64Var(&in.Cadence, "cadence", 0, "cadence in steps/min (running)")
	fs.Float64Var(&in.Elevation, "elevation", 0, "elevation gain in m (cycling)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	in.Kind = k
	if !math.IsNaN(lat) || !math.IsNaN(lng) {
		in.Coords = &Coords{Lat: lat, Lng: lng}
	}

	return c.record(ctx, in)
}

func (c *CLI) ImportWorkout(ctx context.Context, args []string) error {
	fs := c.flagSet("import")
	var gpxFile, kind string
	var cadence float64
	var extra float64
	fs.StringVar(&gpxFile, "gpx", "", "path to gpx file")
	fs.StringVar(&kind, "type", string(KindRunning), "running or cycling")
	fs.Float64Var(&cadence, "cadence", 0, "cadence in steps/min (running)")
	fs.Float64Var(&extra, "elevation", math.NaN(), "elevation gain in m, defaults to the track's climb (cycling)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if gpxFile == "" {
		fs.Usage()
		return fmt.Errorf("missing --gpx")
	}

	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	if k == KindRunning {
		extra = cadence
	}

	c.logger.Info("Importing gpx file", slog.String("gpx_file", gpxFile))

	data, err := readGPXFile(gpxFile)
	if err != nil {
		return err
	}

	in, err := FromGPX(data, k, extra)
	if err != nil {
		return err
	}

	return c.record(ctx, in)
}

func (c *CLI) record(ctx context.Context, in Input) error {
	w, err := c.service.Record(ctx, in)
	if errors.Is(err, ErrInvalidInput) {
		fmt.Fprintln(c.writer, "Inputs have to be positive numbers!")
		return err
	}
	if err != nil {
		return err
	}

	value, unit := w.Metric()
	fmt.Fprintf(c.writer, "%s added (%s, %.1f %s)\n", Popup(w), w.ID, value, unit)
	return nil
}

func (c *CLI) ListWorkouts() error {
	workouts := c.service.Workouts()
	if len(workouts) == 0 {
		fmt.Fprintln(c.writer, "No workouts yet")
		return nil
	}

	for _, w := range workouts {
		value, unit := w.Metric()
		fmt.Fprintf(c.writer, "%s\t%s\t%g km\t%g min\t%.1f %s\t[%g, %g]\n",
			w.ID, Popup(w), w.Distance, w.Duration, value, unit, w.Coords.Lat, w.Coords.Lng)
	}
	return nil
}

func (c *CLI) ExportWorkout(args []string) error {
	fs := c.flagSet("export")
	var id string
	fs.StringVar(&id, "id", "", "workout id")

	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := c.service.Get(id)
	if err != nil {
		return err
	}

	data, err := ToGPX(w)
	if err != nil {
		return err
	}

	_, err = c.writer.Write(data)
	return err
}

func (c *CLI) Reset(ctx context.Context) error {
	if err := c.service.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.writer, "All workouts deleted")
	return nil
}

func (c *CLI) RunAPI(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	mux := NewAPI(c.logger, c.service, c.settings)

	server := &http.Server{
		Addr:    c.addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.logger.Error("Error shutting down server", slog.Any("error", err))
		}
	}()

	c.logger.Info("Starting server", slog.String("addr", c.addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		c.logger.Error("Error starting server", slog.Any("error", err))
		cancel()
		return err
	}

	return nil
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	return os.ReadFile(gpxFile)
}
