package main

import (
	"fmt"
	"log"
	"os"

	"factorlab/cmd"
	"factorlab/internal/app"
	"factorlab/internal/domain"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "factorlab",
		Short: "Fama-French 3-factor model playground",
	}
	root.AddCommand(apiCmd())
	root.AddCommand(runCmd())
	return root
}

func apiCmd() *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "api",
		Short: "Start the playground http api",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			return apiHandler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 3009, "port to listen on")
	return c
}

func runCmd() *cobra.Command {
	var (
		presetID string
		periods  int
	)
	c := &cobra.Command{
		Use:   "run",
		Short: "Run one simulate-and-estimate cycle and print the results",
		RunE: func(c *cobra.Command, args []string) error {
			params := domain.DefaultParameterSet()
			if presetID != "" {
				preset, ok := domain.PresetByID(presetID)
				if !ok {
					return fmt.Errorf("unknown preset %q", presetID)
				}
				params = preset.Params
			}

			handler := app.PlaygroundHandler{}
			response, err := handler.Run(app.RunInput{
				Params:  params,
				Periods: periods,
			})
			if err != nil {
				return err
			}

			printResults(response)
			return nil
		},
	}
	c.Flags().StringVar(&presetID, "preset", "", "preset to apply (default, lab1, lab2, lab3)")
	c.Flags().IntVar(&periods, "periods", 0, "number of monthly periods (0 = default)")
	return c
}

func printResults(response *app.RunResponse) {
	w := os.Stdout

	fmt.Fprintln(w, "Regression Results")
	alpha := response.Regression.Intercept()
	fmt.Fprintf(w, "  Alpha:       %8.4f  (p-value: %.3f)\n", alpha.Estimate, alpha.PValue)
	for _, name := range []string{"Mkt-RF", "SMB", "HML"} {
		coefficient, _ := response.Regression.Coefficient(name)
		fmt.Fprintf(w, "  %-6s beta: %8.3f  (t-stat: %.2f)\n", name, coefficient.Estimate, coefficient.TStat)
	}
	fmt.Fprintf(w, "  R-squared:   %8.3f\n\n", response.Regression.RSquared)

	fmt.Fprintln(w, "Series Summary (annualized)")
	for _, m := range response.Metrics.Factors {
		fmt.Fprintf(w, "  %-6s  return: %7.2f%%  vol: %6.2f%%\n", m.Name, 100*m.AnnualizedReturn, 100*m.AnnualizedStdev)
	}
	asset := response.Metrics.Asset
	fmt.Fprintf(w, "  %-6s  return: %7.2f%%  vol: %6.2f%%  sharpe: %.2f\n",
		asset.Name, 100*asset.AnnualizedReturn, 100*asset.AnnualizedStdev, response.Metrics.SharpeRatio)
}
