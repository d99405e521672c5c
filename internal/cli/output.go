package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
)

// readParams returns the params document for an operation: the second
// positional argument, stdin when that argument is "-", or nothing.
func readParams(cmd *cobra.Command, args []string) (json.RawMessage, error) {
	if len(args) < 2 {
		return nil, nil
	}

	raw := []byte(args[1])
	if args[1] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading params from stdin: %w", err)
		}
		raw = b
	}

	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("params are not valid JSON: %s", raw)
	}
	return raw, nil
}

// buildRequest resolves the operation named by args[0] and builds it.
func buildRequest(cmd *cobra.Command, args []string) (*query.Request, error) {
	params, err := readParams(cmd, args)
	if err != nil {
		return nil, err
	}

	req, err := query.Build(query.Operation(args[0]), params)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", args[0], err)
	}
	return req, nil
}

func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
