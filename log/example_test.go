package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/eqscript/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithTimeLayout("none"),
		log.WithPretty(false),
	)

	logger.Info("equilibrium solved", slog.String("block", "Feed1"))
	logger.Debug("hidden below info")
	// Output:
	// level=INFO msg="equilibrium solved" block=Feed1
}

func Example_json() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithPretty(false),
	)

	logger.With(slog.String("keyword", "ChemicalSystem")).
		Warn("unknown field", slog.String("field", "Solids"))
	// Output:
	// {"level":"WARN","msg":"unknown field","keyword":"ChemicalSystem","field":"Solids"}
}
