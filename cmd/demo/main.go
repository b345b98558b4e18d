// Command demo drives the worked example machine with tracing enabled,
// prints the recorded histories, and exports the machine description in
// the configured format.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
	"github.com/deepaksharmaongraph/frame-transpiler/examples/demo"
	"github.com/deepaksharmaongraph/frame-transpiler/internal/config"
	"github.com/deepaksharmaongraph/frame-transpiler/observe"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m := demo.New()
	mon := m.EventMonitor()
	mon.SetEventHistoryCapacity(cfg.Monitor.EventCapacity())
	mon.SetTransitionHistoryCapacity(cfg.Monitor.TransitionCapacity())

	observe.NewTracer(logger).Attach(mon)

	pub := observe.NewPublisher()
	pub.Attach(mon)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		count := 0
		for range pub.Notifications() {
			count++
		}
		logger.Info("publisher drained", zap.Int("notifications", count))
	}()

	logger.Info("machine constructed",
		zap.String("machine", m.Info().Name),
		zap.String("state", m.CurrentState().Info().Name),
		zap.String("fingerprint", observe.Fingerprint(m.Info())))

	// One full cycle: Foo accumulates its counter, next carries it into
	// the domain and moves to Bar, Bar does the same and change-states
	// back to a fresh Foo.
	fmt.Printf("inc(3) = %d\n", m.Inc(3))
	m.Next()
	fmt.Printf("inc(2) = %d\n", m.Inc(2))
	m.Next()

	fmt.Printf("state: %s\n", m.CurrentState().Info().Name)
	printDomain(m)
	printHistories(mon)

	pub.Close()
	wg.Wait()

	if err := export(cfg.Export, m); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

func printDomain(m frame.Machine) {
	for _, nv := range m.Info().Variables {
		if v, ok := m.DomainVariables().Lookup(nv.Name); ok {
			fmt.Printf("domain %s = %s\n", nv.Name, v)
		}
	}
}

func printHistories(mon *frame.EventMonitor) {
	events := mon.EventHistory()
	fmt.Printf("event history (%d):\n", len(events))
	for _, e := range events {
		if v, ok := e.ReturnValue(); ok {
			fmt.Printf("  %s = %s\n", e.Info().Name, v)
		} else {
			fmt.Printf("  %s\n", e.Info().Name)
		}
	}

	transitions := mon.TransitionHistory()
	fmt.Printf("transition history (%d):\n", len(transitions))
	for _, tr := range transitions {
		fmt.Printf("  #%d %s\n", tr.Info.ID, tr)
	}
}

// export writes the machine description in the configured format, to
// the configured path or stdout.
func export(cfg config.ExportConfig, m frame.Machine) error {
	var data []byte
	switch cfg.Format {
	case "dot":
		data = []byte(observe.ExportDOT(m.Info(), m.CurrentState().Info().Name))
	case "json":
		b, err := observe.Describe(m.Info()).JSON()
		if err != nil {
			return err
		}
		data = b
	default:
		b, err := observe.Describe(m.Info()).YAML()
		if err != nil {
			return err
		}
		data = b
	}

	if cfg.OutputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(cfg.OutputPath, data, 0o644)
}
