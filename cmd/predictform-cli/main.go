package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/clinsight/go-predictform/pkg/form"
	"github.com/clinsight/go-predictform/pkg/notify"
	"github.com/clinsight/go-predictform/pkg/orchestrator"
	"github.com/clinsight/go-predictform/pkg/predict"
	"github.com/clinsight/go-predictform/pkg/prompt"
	"github.com/clinsight/go-predictform/pkg/report"
	"github.com/clinsight/go-predictform/pkg/result"
	"github.com/clinsight/go-predictform/pkg/theme"
	"github.com/clinsight/go-predictform/pkg/widgets"
)

func main() {
	endpoint := flag.String("endpoint", "http://127.0.0.1:5000", "prediction service base URL")
	schema := flag.String("schema", "", "form definition path or URL (YAML or OpenAPI); built-in SEER form if empty")
	operation := flag.String("operation", "predict", "operation ID when the schema is an OpenAPI document")
	chartOut := flag.String("chart", "", "write the proportion chart PNG to this path")
	reportOut := flag.String("report", "", "write an HTML summary to this path")
	health := flag.Bool("health", false, "check service health and exit")
	toggleTheme := flag.Bool("toggle-theme", false, "flip the persisted theme preference and exit")
	verbose := flag.Bool("verbose", false, "enable diagnostic logging")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		logger = dev
		defer func() {
			_ = logger.Sync()
		}()
	}

	ctx := context.Background()

	manager, err := themeManager()
	if err != nil {
		log.Fatalf("theme: %v", err)
	}
	if _, err := manager.Load(); err != nil {
		log.Fatalf("theme: %v", err)
	}

	if *toggleTheme {
		pref, err := manager.Toggle()
		if err != nil {
			log.Fatalf("theme: %v", err)
		}
		fmt.Printf("Theme is now %s %s\n", pref, manager.Icon())
		return
	}

	client, err := predict.NewClient(*endpoint,
		predict.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		predict.WithLogger(logger))
	if err != nil {
		log.Fatalf("client: %v", err)
	}

	if *health {
		status, err := client.Health(ctx)
		if err != nil {
			log.Fatalf("health check failed: %v", err)
		}
		fmt.Printf("Service status: %s (model loaded: %t)\n", status.Status, status.ModelLoaded)
		return
	}

	def, err := loadDefinition(ctx, *schema, *operation)
	if err != nil {
		log.Fatalf("form definition: %v", err)
	}

	style := termStyle(manager)
	collector := prompt.NewCollector(def)
	notifier := notify.NewTerminal()
	button := widgets.NewButton(os.Stdout, "Predict", style)
	termChart := widgets.NewTermChart(os.Stdout, style)

	var chart result.Chart = termChart
	var donutFile *os.File
	if *chartOut != "" {
		donutFile, err = os.Create(*chartOut)
		if err != nil {
			log.Fatalf("chart output: %v", err)
		}
		defer func() {
			_ = donutFile.Close()
		}()
		chart = splitChart{termChart, widgets.NewDonut(donutFile)}
	}

	renderer := result.New(
		result.WithProgressBar(widgets.NewTermProgress(os.Stdout, style)),
		result.WithChart(chart),
		result.WithClassSink(widgets.NewTextLine(os.Stdout, "Predicted class:")),
		result.WithNoteSink(widgets.NewTextLine(os.Stdout, "Note:")),
		result.WithLogger(logger),
	)

	var observed capturePredictor
	observed.Predictor = client

	orch := orchestrator.New(
		orchestrator.WithEntrySource(collector),
		orchestrator.WithPredictor(&observed),
		orchestrator.WithResultRenderer(renderer),
		orchestrator.WithNotifier(notifier),
		orchestrator.WithTriggerControl(button),
		orchestrator.WithLogger(logger),
	)

	if err := orch.Submit(ctx); err != nil {
		// Failures were already surfaced through the notification channel.
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		os.Exit(1)
	}

	if *reportOut != "" {
		if err := writeReport(*reportOut, def, observed); err != nil {
			log.Fatalf("report: %v", err)
		}
		fmt.Printf("Report written to %s\n", *reportOut)
	}
	if *chartOut != "" {
		fmt.Printf("Chart written to %s\n", *chartOut)
	}
}

func themeManager() (*theme.Manager, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	store, err := theme.NewFileStore(filepath.Join(configDir, "predictform", "preferences.json"))
	if err != nil {
		return nil, err
	}
	return theme.NewManager(store), nil
}

func loadDefinition(ctx context.Context, schema, operation string) (form.Definition, error) {
	if schema == "" {
		return form.SEER(), nil
	}
	src := form.ParseSource(schema)
	if src == nil {
		return form.Definition{}, fmt.Errorf("invalid schema source %q", schema)
	}
	loader := form.NewLoader(
		form.WithHTTPClient(http.DefaultClient),
		form.WithRequestTimeout(15*time.Second))
	return loader.LoadDefinition(ctx, src, operation)
}

func termStyle(manager *theme.Manager) widgets.TermStyle {
	style := widgets.DefaultTermStyle()
	if accent := manager.Token("accent"); accent != "" {
		style.Accent = accent
	}
	if muted := manager.Token("muted"); muted != "" {
		style.Muted = muted
	}
	if danger := manager.Token("danger"); danger != "" {
		style.Danger = danger
	}
	return style
}

func writeReport(path string, def form.Definition, observed capturePredictor) error {
	if !observed.called {
		return errors.New("no prediction to report")
	}
	builder, err := report.NewBuilder()
	if err != nil {
		return err
	}
	html, err := builder.Build(def, observed.payload, observed.result)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644)
}
