package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iafilius/AttosecondDelays/src/physics"
)

type elementRow struct {
	Symbol string  `yaml:"symbol"`
	Z      int     `yaml:"z"`
	Zeff   float64 `yaml:"zeff"`
	Ncore  int     `yaml:"ncore"`
	Ntotal int     `yaml:"ntotal"`
	Ip     float64 `yaml:"ip_ev"`
}

type cutoffRow struct {
	Symbol    string                    `yaml:"symbol"`
	Z         int                       `yaml:"z"`
	Zeff      float64                   `yaml:"zeff"`
	Bare      float64                   `yaml:"ec_uncorrected_ev"`
	Corrected float64                   `yaml:"ec_corrected_ev"`
	Factors   physics.CorrectionFactors `yaml:"factors"`
}

func newElementsCommand() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Print the tabulated element constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows []elementRow
			for _, el := range physics.Default().Table().Elements() {
				rows = append(rows, elementRow{el.Symbol, el.Z, el.Zeff, el.Ncore, el.Ntotal, el.Ip})
			}
			if asYAML {
				return writeYAML(cmd.OutOrStdout(), rows)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %3s %6s %6s %7s %7s\n", "Sym", "Z", "Zeff", "Ncore", "Ntotal", "Ip(eV)")
			for _, r := range rows {
				fmt.Fprintf(out, "%-4s %3d %6.2f %6d %7d %7.2f\n", r.Symbol, r.Z, r.Zeff, r.Ncore, r.Ntotal, r.Ip)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML")
	return cmd
}

// cutoffTable evaluates uncorrected and corrected cutoffs for every tabulated element.
func cutoffTable(eng *physics.Engine) ([]cutoffRow, error) {
	var rows []cutoffRow
	for _, el := range eng.Table().Elements() {
		bare, err := eng.CutoffEnergy(el.Symbol, el.Z, el.Zeff, false)
		if err != nil {
			return nil, err
		}
		corrected, err := eng.CutoffEnergy(el.Symbol, el.Z, el.Zeff, true)
		if err != nil {
			return nil, err
		}
		cf, err := eng.CorrectionsFor(el, el.Zeff)
		if err != nil {
			return nil, err
		}
		rows = append(rows, cutoffRow{
			Symbol:    el.Symbol,
			Z:         el.Z,
			Zeff:      el.Zeff,
			Bare:      bare,
			Corrected: corrected,
			Factors:   cf,
		})
	}
	return rows, nil
}

func newCutoffsCommand() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "cutoffs",
		Short: "Print cutoff energies and correction factors per element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := cutoffTable(physics.Default())
			if err != nil {
				return err
			}
			if asYAML {
				return writeYAML(cmd.OutOrStdout(), rows)
			}
			writeCutoffs(cmd.OutOrStdout(), rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML")
	return cmd
}

func writeCutoffs(w io.Writer, rows []cutoffRow) {
	fmt.Fprintf(w, "%-4s %3s %6s %10s %10s %7s %7s %7s\n", "Sym", "Z", "Zeff", "Ec(eV)", "Ec corr", "Multi", "Rel", "Pol")
	for _, r := range rows {
		fmt.Fprintf(w, "%-4s %3d %6.2f %10.3f %10.3f %7.4f %7.4f %7.4f\n",
			r.Symbol, r.Z, r.Zeff, r.Bare, r.Corrected, r.Factors.Multi, r.Factors.Rel, r.Factors.Pol)
	}
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("qgufigures version %s\n", version)
		},
	}
}
