package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SpaceParameters struct {
	Title           string `yaml:"Title"`
	MeshKind        string `yaml:"MeshKind"`   // interval, square or cube
	Resolution      int    `yaml:"Resolution"` // cells per side
	PolynomialOrder int    `yaml:"PolynomialOrder"`
	ShowDofMap      bool   `yaml:"ShowDofMap"` // print the full numbering table
}

func (sp *SpaceParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, sp); err != nil {
		return err
	}
	return sp.Validate()
}

func (sp *SpaceParameters) Validate() error {
	switch sp.MeshKind {
	case "interval", "square", "cube":
	default:
		return fmt.Errorf("unknown mesh kind %q, want interval, square or cube", sp.MeshKind)
	}
	if sp.Resolution < 1 {
		return fmt.Errorf("resolution must be >= 1, got %d", sp.Resolution)
	}
	if sp.PolynomialOrder < 1 {
		return fmt.Errorf("polynomial order must be >= 1, got %d", sp.PolynomialOrder)
	}
	return nil
}

func (sp *SpaceParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= MeshKind\n", sp.MeshKind)
	fmt.Printf("[%d]\t\t\t= Resolution\n", sp.Resolution)
	fmt.Printf("[%d]\t\t\t= Polynomial Order\n", sp.PolynomialOrder)
}
