package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/josephgoksu/selfdiscover/internal/discover"
	"github.com/spf13/viper"
)

// PrintError writes err for the user followed by any hints attached to it.
// With --verbose the full error chain, including stack traces, is printed.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "Interrupted.")
		return
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(w, "Error: %+v\n", err)
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	// Only the text format streams stage output as it completes; json and
	// yaml write the partial transcript instead.
	var serr *discover.StageError
	if errors.As(err, &serr) && serr.Stage != discover.StageSelect && textOutput() {
		fmt.Fprintln(w, "Output of the stages that completed was written above.")
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

func textOutput() bool {
	format, err := discover.ParseFormat(viper.GetString("output.format"))
	return err == nil && format == discover.FormatText
}
