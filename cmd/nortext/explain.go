package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lemoi18/Text-Normalizer-norwegian/normalize"
	"github.com/lemoi18/Text-Normalizer-norwegian/numtext"
)

// explainedSpan is a span with the number its spoken form reads back to,
// when it reads back to one.
type explainedSpan struct {
	normalize.Span
	Value *int64 `json:"value,omitempty"`
}

func (a *app) explainCmd() *cobra.Command {
	var (
		asJSON    bool
		listRules bool
	)

	cmd := &cobra.Command{
		Use:   "explain [text...]",
		Short: "Show which rule rewrote each part of the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listRules {
				for i, name := range normalize.Rules() {
					fmt.Fprintf(out, "%2d  %s\n", i+1, name)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("explain needs text or --rules")
			}

			text := strings.Join(args, " ")
			spans := explain(text)
			a.log.Debug("explained text", "spans", len(spans))

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(spans)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tSPAN\tTEXT\tSPOKEN\tVALUE")
			for _, s := range spans {
				value := ""
				if s.Value != nil {
					value = strconv.FormatInt(*s.Value, 10)
				}
				fmt.Fprintf(tw, "%s\t%d-%d\t%q\t%q\t%s\n", s.Rule, s.Start, s.End, s.Text, s.Spoken, value)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out, normalize.Normalize(text))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print spans as JSON")
	cmd.Flags().BoolVar(&listRules, "rules", false, "list the rules in priority order")
	return cmd
}

func explain(text string) []explainedSpan {
	spans := normalize.Spans(text)
	out := make([]explainedSpan, len(spans))
	for i, s := range spans {
		out[i].Span = s
		if v, err := numtext.Parse(s.Spoken); err == nil {
			out[i].Value = &v
		}
	}
	return out
}
