// Command airframe writes the parts of a foam core RC plane as OpenSCAD
// sources, STL meshes or flat cutting templates.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	var opts options
	rootCmd := &cobra.Command{
		Use:          "airframe",
		Short:        "Parametric RC airframe part generator",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "YAML parameter file")
	rootCmd.PersistentFlags().StringVar(&opts.airfoil, "airfoil", "", "airfoil profile in Selig format (overrides config)")

	rootCmd.AddCommand(scadCmd(&opts))
	rootCmd.AddCommand(stlCmd(&opts))
	rootCmd.AddCommand(templateCmd(&opts))
	rootCmd.AddCommand(scenesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scadCmd(opts *options) *cobra.Command {
	var out string
	var detail int
	cmd := &cobra.Command{
		Use:   "scad [scene]",
		Short: "Write a scene as an OpenSCAD file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSCAD(opts, args[0], out, detail)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "out.scad", "output file")
	cmd.Flags().IntVar(&detail, "detail", 25, "OpenSCAD $fn fragment count")
	return cmd
}

func stlCmd(opts *options) *cobra.Command {
	var out, material string
	var cells int
	cmd := &cobra.Command{
		Use:   "stl [scene]",
		Short: "Tessellate a scene into a binary STL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSTL(opts, args[0], out, cells, material)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "out.stl", "output file")
	cmd.Flags().IntVar(&cells, "cells", 200, "marching cubes cells along the longest side")
	cmd.Flags().StringVar(&material, "material", "", "compensate shrinkage of printing material (pla, petg)")
	return cmd
}

func templateCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write root and tip rib templates with the hinge profiles",
		Long:  "Write root and tip rib templates with the hinge profiles. A .dxf output is a CAD drawing, any other extension is a plot image.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTemplate(opts, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "templates.dxf", "output file")
	return cmd
}

func scenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range scenes {
				cmd.Printf("%-16s %s\n", s.name, s.description)
			}
		},
	}
}
