// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/usecase/coordsuc"
	"github.com/spf13/cobra"
)

var (
	decimalSep  string
	jsonOutput  bool
	outNotation string
)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse one coordinate text",
	Long: `Parse one coordinate text and print its signed decimal latitude
and longitude (using the same decimal separator), followed by its
detected notation. The --format flag
renders the coordinate in another notation instead (one of dms, dm,
degrees, decimal-hemisphere, or decimal-pair), while the --json flag
prints all of them as a json object.`,
	Example: `  geocoord parse '41°54'"'"'10"N 12°29'"'"'47"E'
  geocoord parse -d , --format dms -- '-33,8 -118,4'`,
	RunE: parseText,
	Args: cobra.ExactArgs(1),
}

type parseOutput struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Notation string  `json:"notation"`
	Text     string  `json:"text"`
}

// coordsUseCase creates a coordinates use case which uses the decimal
// separator of the -d flag by default.
func coordsUseCase() (*coordsuc.UseCase, error) {
	nf, err := model.ParseNumberFormat(decimalSep)
	if err != nil {
		return nil, fmt.Errorf("decimal separator: %w", err)
	}
	return coordsuc.New(coordsuc.WithNumberFormat(nf))
}

func parseText(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	uc, err := coordsUseCase()
	if err != nil {
		return err
	}
	p, err := uc.Parse(ctx, &args[0], nil)
	if err != nil {
		return err
	}
	n := p.Notation
	switch {
	case outNotation != "":
		if n, err = model.ParseNotation(outNotation); err != nil {
			return err
		}
	case !jsonOutput:
		n = model.NotationDecimalPair
	}
	text, err := uc.Convert(ctx, &args[0], n, nil, nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		b, err := json.Marshal(parseOutput{
			Lat:      p.Coordinate.Lat(),
			Lon:      p.Coordinate.Lon(),
			Notation: p.Notation.String(),
			Text:     text,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	case outNotation != "":
		fmt.Fprintln(out, text)
	default:
		fmt.Fprintf(out, "%s\t%s\n", text, p.Notation)
	}
	return nil
}

func init() {
	f := parseCmd.Flags()
	f.StringVarP(&decimalSep, "decimal-separator", "d", ".", "decimal separator of numbers")
	f.BoolVar(&jsonOutput, "json", false, "print a json object")
	f.StringVar(&outNotation, "format", "", "notation of the printed text")
	rootCmd.AddCommand(parseCmd)
}
