package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cluttrdev/sfe/InputParameters"
	"github.com/cluttrdev/sfe/element"
	"github.com/cluttrdev/sfe/fespace"
	"github.com/cluttrdev/sfe/mesh"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report entity counts, connectivity and dof numbering of a space",
	Long: `
Builds a structured demo mesh, constructs the Lagrange finite element space
over it and reports entity counts, incidence statistics and the global dof
numbering,

sfe info -m square -k 4 -n 2`,
	Run: func(cmd *cobra.Command, args []string) {
		sp := &InputParameters.SpaceParameters{}
		if inputFile, _ := cmd.Flags().GetString("input"); inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err = sp.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		} else {
			sp.MeshKind, _ = cmd.Flags().GetString("mesh")
			sp.Resolution, _ = cmd.Flags().GetInt("k")
			sp.PolynomialOrder, _ = cmd.Flags().GetInt("n")
			sp.ShowDofMap, _ = cmd.Flags().GetBool("dofmap")
			if err := sp.Validate(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		sp.Print()
		if err := RunInfo(sp); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringP("mesh", "m", "square", "demo mesh: interval, square or cube")
	infoCmd.Flags().IntP("k", "k", 2, "Resolution - cells per side of the demo mesh")
	infoCmd.Flags().IntP("n", "n", 1, "polynomial degree of the Lagrange element")
	infoCmd.Flags().StringP("input", "i", "", "YAML parameter file overriding the flags")
	infoCmd.Flags().Bool("dofmap", false, "print the full local-to-global dof table")
	infoCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

func buildTopology(sp *InputParameters.SpaceParameters) (*mesh.Topology, error) {
	switch sp.MeshKind {
	case "interval":
		return mesh.UnitInterval(sp.Resolution)
	case "square":
		return mesh.UnitSquare(sp.Resolution)
	case "cube":
		return mesh.UnitCube(sp.Resolution)
	}
	return nil, fmt.Errorf("unknown mesh kind %q", sp.MeshKind)
}

func RunInfo(sp *InputParameters.SpaceParameters) error {
	topo, err := buildTopology(sp)
	if err != nil {
		return err
	}
	el, err := element.NewLagrange(topo.Shape(), sp.PolynomialOrder)
	if err != nil {
		return err
	}
	fs, err := fespace.New(topo, el)
	if err != nil {
		return err
	}
	td := topo.TopDim()
	fmt.Printf("%v mesh, %v element, dofTuple = %v\n", topo.Shape(), el, el.DofTuple())
	for d := 0; d <= td; d++ {
		n, err := topo.Count(d)
		if err != nil {
			return err
		}
		fmt.Printf("dim %d: %8d entities\n", d, n)
	}
	for d := 0; d < td; d++ {
		c, err := topo.Connectivity(td, d)
		if err != nil {
			return err
		}
		nd, ndd := c.Size()
		fmt.Printf("connectivity (%d -> %d): %d x %d, nnz = %d, uniform = %v\n",
			td, d, nd, ndd, c.Nnz(), c.Uniform())
	}
	nDoF, err := fs.NDoF()
	if err != nil {
		return err
	}
	fmt.Printf("NDoF = %d\n", nDoF)
	for d := 0; d <= td; d++ {
		ids, err := fs.DofIndices(d)
		if err != nil {
			return err
		}
		fmt.Printf("dofIndices(%d): %d of %d dofs reachable\n", d, len(ids), nDoF)
	}
	if sp.ShowDofMap {
		dm, err := fs.DofMap(td)
		if err != nil {
			return err
		}
		fmt.Printf("dofMap(%d) = \n%v\n", td, dm)
	}
	return nil
}
