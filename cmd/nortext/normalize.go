package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lemoi18/Text-Normalizer-norwegian/normalize"
)

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Normalize the arguments, or standard input line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				_, err := fmt.Fprintln(out, normalize.Normalize(strings.Join(args, " ")))
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
			lines := 0
			for sc.Scan() {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, normalize.Normalize(sc.Text())); err != nil {
					return err
				}
				lines++
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			a.log.Debug("normalized input", "lines", lines)
			return nil
		},
	}
}
