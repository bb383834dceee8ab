package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/element"
)

// Parameters obtained from the YAML input file
type ElementSpec struct {
	Family          string `yaml:"Family"`
	Cell            string `yaml:"Cell"`
	Degree          int    `yaml:"Degree"`
	LagrangeVariant string `yaml:"LagrangeVariant"`
	DPCVariant      string `yaml:"DPCVariant"`
	Discontinuous   bool   `yaml:"Discontinuous"`
}

type BatchParameters struct {
	Title    string        `yaml:"Title"`
	Elements []ElementSpec `yaml:"Elements"`
}

func (bp *BatchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BatchParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%d]\t\t\t= Element Count\n", len(bp.Elements))
	for i, es := range bp.Elements {
		fmt.Printf("Elements[%d] = %s %s degree %d\n", i, es.Family, es.Cell, es.Degree)
	}
}

// Build resolves the spec strings and creates the element.
func (es *ElementSpec) Build() (e *element.Element, err error) {
	fam, err := element.FamilyFromString(strings.TrimSpace(es.Family))
	if err != nil {
		return
	}
	ct, err := cell.TypeFromString(strings.TrimSpace(es.Cell))
	if err != nil {
		return
	}
	lv := element.VariantUnset
	if es.LagrangeVariant != "" {
		if lv, err = element.LagrangeVariantFromString(es.LagrangeVariant); err != nil {
			return
		}
	}
	dv := element.DPCUnset
	if es.DPCVariant != "" {
		if dv, err = element.DPCVariantFromString(es.DPCVariant); err != nil {
			return
		}
	}
	return element.CreateElement(fam, ct, es.Degree, lv, dv, es.Discontinuous)
}
