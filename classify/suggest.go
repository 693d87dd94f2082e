package classify

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// ComponentSuggestion proposes a component for a cylinder assembly derived
// from its specifications. Compatibility grades how well the suggestion
// fits, 1.0 being an exact standard fit.
type ComponentSuggestion struct {
	Category      string  `json:"category"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Compatibility float64 `json:"compatibility"`
}

// Rod diameter is derived from the bore by a fixed 0.6 ratio, rounded down.
const rodDiameterRatio = 0.6

// GenerateSuggestions derives a deterministic component list for a cylinder
// specification. A numeric bore and a series are required; without them no
// meaningful component codes exist and the result is empty.
//
// Generated codes follow <prefix><series><size>-<suffix>. The prefix and
// suffix pairs are stable identifiers consumed by downstream purchasing
// systems and must not change between releases. <size> is the bore, except
// piston rod and bushing codes which use the derived rod diameter.
func (e *Engine) GenerateSuggestions(specs map[string]string) []ComponentSuggestion {
	suggestions := []ComponentSuggestion{}

	boreRaw := strings.TrimSpace(specs[SpecBore])
	series := strings.TrimSpace(specs[SpecSeries])
	bore, err := strconv.Atoi(boreRaw)
	if boreRaw == "" || series == "" || err != nil {
		e.logger.Warn("Skipping suggestions: numeric bore and series are required",
			"bore", boreRaw,
			"series", series)
		return suggestions
	}

	rodDiameter := int(math.Floor(float64(bore) * rodDiameterRatio))

	add := func(category, prefix, suffix, name, description string, size, quantity int, compatibility float64) {
		suggestions = append(suggestions, ComponentSuggestion{
			Category:      category,
			Code:          fmt.Sprintf("%s%s%d-%s", prefix, series, size, suffix),
			Name:          name,
			Description:   description,
			Quantity:      quantity,
			Compatibility: compatibility,
		})
		if e.metrics != nil {
			e.metrics.RecordSuggestion()
		}
	}

	add(vocabulary.ClassBarrel, "BRL", "STD",
		"Cylinder barrel",
		fmt.Sprintf("Honed barrel tube, %dmm bore", bore),
		bore, 1, 1.0)
	if bore > 80 {
		add(vocabulary.ClassBarrel, "BRL", "CRS",
			"Corrosion-resistant barrel",
			fmt.Sprintf("Stainless barrel tube for corrosive environments, %dmm bore", bore),
			bore, 1, 0.9)
	}

	add(vocabulary.ClassPiston, "PST", "STD",
		"Piston",
		fmt.Sprintf("Piston head, %dmm bore", bore),
		bore, 1, 1.0)
	if series == "11" {
		add(vocabulary.ClassPiston, "PST", "HDR",
			"Reinforced piston",
			"Heavy-duty piston for series 11 cylinders",
			bore, 1, 0.95)
	}

	add(vocabulary.ClassPistonRod, "ROD", "STD",
		"Piston rod",
		fmt.Sprintf("Piston rod, %dmm diameter", rodDiameter),
		rodDiameter, 1, 1.0)
	add(vocabulary.ClassPistonRod, "ROD", "CHR",
		"Chrome-plated piston rod",
		fmt.Sprintf("Hard chrome rod surface for wear resistance, %dmm diameter", rodDiameter),
		rodDiameter, 1, 0.95)

	add(vocabulary.ClassPistonSeal, "SEL", "PSS",
		"Piston seal set",
		fmt.Sprintf("Piston seal set, %dmm bore", bore),
		bore, 1, 1.0)
	add(vocabulary.ClassRodSeal, "SEL", "RSS",
		"Rod seal",
		fmt.Sprintf("Rod seal, %dmm bore", bore),
		bore, 1, 1.0)
	add(vocabulary.ClassWiperSeal, "SEL", "WPR",
		"Wiper seal",
		fmt.Sprintf("Wiper seal, %dmm bore", bore),
		bore, 1, 1.0)
	if bore > 100 {
		add(vocabulary.ClassBufferSeal, "SEL", "BFR",
			"Buffer seal",
			"Shock buffer seal for large-bore cylinders",
			bore, 1, 0.8)
	}

	add(vocabulary.ClassHeadEndCap, "CAP", "HED",
		"Head end cap",
		fmt.Sprintf("Head-side end cap, %dmm bore", bore),
		bore, 1, 1.0)
	add(vocabulary.ClassRodEndCap, "CAP", "RDE",
		"Rod end cap",
		fmt.Sprintf("Rod-side end cap, %dmm bore", bore),
		bore, 1, 1.0)

	add(vocabulary.ClassRodBushing, "BSH", "ROD",
		"Rod bushing",
		fmt.Sprintf("Rod bushing, %dmm rod diameter", rodDiameter),
		rodDiameter, 1, 1.0)
	if bore > 80 {
		add(vocabulary.ClassGuideBushing, "BSH", "GDE",
			"Guide bushing",
			fmt.Sprintf("Rod guide bushing, %dmm rod diameter", rodDiameter),
			rodDiameter, 1, 0.8)
	}

	add(vocabulary.ClassTieRod, "FST", "TRD",
		"Tie rod set",
		fmt.Sprintf("Tie rods, %dmm bore assembly", bore),
		bore, tieRodQuantity(bore), 1.0)
	add(vocabulary.ClassEndCapBolt, "FST", "ECB",
		"End cap bolt set",
		fmt.Sprintf("End cap bolts, %dmm bore assembly", bore),
		bore, 1, 1.0)

	return suggestions
}

// tieRodQuantity picks the tie rod count for a bore size. The steps mirror
// the standard assembly drawings for each frame size.
func tieRodQuantity(bore int) int {
	switch {
	case bore <= 50:
		return 4
	case bore <= 100:
		return 6
	case bore <= 150:
		return 8
	default:
		return 12
	}
}
