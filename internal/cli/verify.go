// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pauli/verify"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check unitarity, Hermiticity, commutation and ladder identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := verify.New(verify.WithTolerance(a.cfg.Tolerance))
			report := v.Report()

			out := cmd.OutOrStdout()
			for _, res := range report {
				status := "PASS"
				if !res.Passed {
					status = "FAIL"
				}
				if res.Err != nil {
					fmt.Fprintf(out, "%s %s: %v\n", status, res.Name, res.Err)
					continue
				}
				fmt.Fprintf(out, "%s %s\n", status, res.Name)
			}

			a.logger.Info("verification finished",
				"checks", len(report),
				"failed", report.Failed(),
				"tolerance", v.Tolerance())
			if !report.OK() {
				return fmt.Errorf("%d of %d checks: %w", report.Failed(), len(report), ErrChecksFailed)
			}

			return nil
		},
	}
}
