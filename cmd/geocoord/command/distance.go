// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var distanceCmd = &cobra.Command{
	Use:   "distance FROM TO",
	Short: "Print the great-circle distance of two coordinate texts",
	Long: `Parse two coordinate texts and print their great-circle
(haversine) distance in kilometers, assuming a spherical Earth.`,
	RunE: printDistance,
	Args: cobra.ExactArgs(2),
}

func printDistance(cmd *cobra.Command, args []string) error {
	uc, err := coordsUseCase()
	if err != nil {
		return err
	}
	km, err := uc.Distance(cmd.Context(), &args[0], &args[1], nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.3f km\n", km)
	return nil
}

func init() {
	distanceCmd.Flags().StringVarP(
		&decimalSep, "decimal-separator", "d", ".", "decimal separator of numbers",
	)
	rootCmd.AddCommand(distanceCmd)
}
