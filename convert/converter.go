// Package convert maps ERP bill-of-material records into ontology graph
// nodes and edges. Conversion is idempotent: node identifiers derive
// deterministically from item codes, reference edges deduplicate, and a
// caller-supplied NodeIndex routes repeated codes to their existing nodes.
package convert

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/metric"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
	"github.com/JuntinLin/bom-owl-sub002/schema"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// Master item codes for hydraulic cylinders use a fixed positional layout.
// Codes shorter than 15 characters or outside the '3'/'4' prefix families
// are generic materials and carry no positional features.
//
//	[2,4)   series
//	[4,5)   type
//	[5,8)   bore diameter, numeric
//	[10,14) stroke length, numeric
//	[14,15) rod end type
const minCylinderCodeLen = 15

// installationCodes maps the component code window [2,5) to the installation
// type recorded on the master item. The values are ERP business constants.
var installationCodes = map[string]string{
	"201": "CA",
	"202": "CB",
	"203": "FA",
	"206": "TC",
	"207": "LA",
	"208": "LB",
}

// shaftEndJoinCodes maps the same window to the shaft end join type, also
// recorded on the master. Both tables read the same window; installation
// codes are consulted first. The key sets are disjoint today, so order only
// matters if the tables ever grow a shared key.
var shaftEndJoinCodes = map[string]string{
	"209": "Y",
	"210": "I",
	"211": "Pin",
}

// Converter writes BOM records into an ontology graph under the schema's
// property semantics. A Converter is stateless between calls and safe for
// concurrent use; the graph carries the synchronization.
type Converter struct {
	graph   *ontology.Graph
	schema  *schema.Schema
	logger  *slog.Logger
	metrics *metric.Metrics
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger for conversion warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithMetrics enables conversion counters and the graph size gauge.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}

// New creates a Converter over the given graph and schema.
func New(g *ontology.Graph, s *schema.Schema, opts ...Option) (*Converter, error) {
	if g == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "converter", "New", "graph")
	}
	if s == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "converter", "New", "schema")
	}

	c := &Converter{
		graph:  g,
		schema: s,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ConvertMaterial creates or updates the Material node for one item. The
// node identifier is the sanitized item IRI; the raw code, name and spec are
// stored as datatype properties. Codes that sanitize to nothing are
// rejected.
func (c *Converter) ConvertMaterial(item MaterialRecord) (NodeRef, error) {
	id := vocabulary.ItemIRI(item.Code)
	if id == "" {
		c.recordConversion("material", "error")
		return "", errors.WrapInvalid(errors.ErrEmptyIdentifier, "converter", "ConvertMaterial", "item code")
	}

	if _, err := c.graph.EnsureNode(id); err != nil {
		c.recordConversion("material", "error")
		return "", err
	}
	if err := c.graph.AddType(id, vocabulary.ClassMaterial); err != nil {
		c.recordConversion("material", "error")
		return "", err
	}

	if err := c.attach(id, vocabulary.PropItemCode, ontology.StringValue(item.Code)); err != nil {
		c.recordConversion("material", "error")
		return "", err
	}
	if item.Name != "" {
		if err := c.attach(id, vocabulary.PropItemName, ontology.StringValue(item.Name)); err != nil {
			c.recordConversion("material", "error")
			return "", err
		}
	}
	if item.Spec != "" {
		if err := c.attach(id, vocabulary.PropSpecification, ontology.StringValue(item.Spec)); err != nil {
			c.recordConversion("material", "error")
			return "", err
		}
	}

	c.recordConversion("material", "ok")
	return NodeRef(id), nil
}

// ConvertBomStructure converts one master item and its component list. The
// master gains the MasterItem tag, its characteristic code, and any
// positional features its code encodes. Each component gains the
// ComponentItem tag, a reified Bom relation node holding quantity, sequence
// and effectivity dates, and the direct hasComponent / inverse isUsedIn
// edges. Re-running the call with the same records updates nodes in place.
func (c *Converter) ConvertBomStructure(master MasterRecord, components []ComponentRecord, index *NodeIndex) error {
	if index == nil {
		return errors.WrapInvalid(errors.ErrMissingConfig, "converter", "ConvertBomStructure", "node index")
	}

	start := time.Now()

	masterRef, err := c.ensureItem(index, master.Code)
	if err != nil {
		c.recordConversion("bom", "error")
		return err
	}
	masterID := string(masterRef)

	if err := c.graph.AddType(masterID, vocabulary.ClassMasterItem); err != nil {
		c.recordConversion("bom", "error")
		return err
	}
	if master.CharacteristicCode != "" {
		if err := c.attach(masterID, vocabulary.PropCharacteristicCode, ontology.StringValue(master.CharacteristicCode)); err != nil {
			c.recordConversion("bom", "error")
			return err
		}
	}

	if err := c.extractCylinderFeatures(masterID, master.Code); err != nil {
		c.recordConversion("bom", "error")
		return err
	}

	for _, comp := range components {
		if err := c.convertComponent(masterID, master.Code, comp, index); err != nil {
			c.recordConversion("bom", "error")
			return err
		}
	}

	c.recordConversion("bom", "ok")
	if c.metrics != nil {
		c.metrics.RecordConversionDuration("bom", time.Since(start))
		c.metrics.SetGraphNodes(c.graph.Len())
	}
	return nil
}

// ensureItem resolves an item code through the index, materializing a
// placeholder Material node on first sight.
func (c *Converter) ensureItem(index *NodeIndex, code string) (NodeRef, error) {
	if ref, ok := index.Lookup(code); ok {
		return ref, nil
	}
	ref, err := c.ConvertMaterial(MaterialRecord{Code: code})
	if err != nil {
		return "", err
	}
	index.Register(code, ref)
	return ref, nil
}

// extractCylinderFeatures derives the positional features from a
// hydraulic-cylinder master code. Non-numeric bore or stroke fields skip
// that feature with a warning; they never fail the conversion.
func (c *Converter) extractCylinderFeatures(masterID, code string) error {
	if len(code) < minCylinderCodeLen {
		return nil
	}
	if code[0] != '3' && code[0] != '4' {
		return nil
	}

	if err := c.attach(masterID, vocabulary.PropHasSeries, ontology.StringValue(code[2:4])); err != nil {
		return err
	}
	if err := c.attach(masterID, vocabulary.PropHasType, ontology.StringValue(code[4:5])); err != nil {
		return err
	}
	if err := c.attach(masterID, vocabulary.PropHasRodEndType, ontology.StringValue(code[14:15])); err != nil {
		return err
	}

	if bore, err := strconv.Atoi(code[5:8]); err == nil {
		if err := c.attach(masterID, vocabulary.PropHasBoreSize, ontology.IntValue(bore)); err != nil {
			return err
		}
	} else {
		c.logger.Warn("Skipping non-numeric bore field in master code",
			"code", code, "bore", code[5:8])
	}

	if stroke, err := strconv.Atoi(code[10:14]); err == nil {
		if err := c.attach(masterID, vocabulary.PropHasStrokeLength, ontology.IntValue(stroke)); err != nil {
			return err
		}
	} else {
		c.logger.Warn("Skipping non-numeric stroke field in master code",
			"code", code, "stroke", code[10:14])
	}

	return nil
}

// convertComponent converts one BOM line: the component item node, the Bom
// relation node, the usage edges, and the characteristic window lookups.
func (c *Converter) convertComponent(masterID, masterCode string, comp ComponentRecord, index *NodeIndex) error {
	compRef, err := c.ensureItem(index, comp.Code)
	if err != nil {
		return err
	}
	compID := string(compRef)

	if err := c.graph.AddType(compID, vocabulary.ClassComponentItem); err != nil {
		return err
	}
	if comp.CharacteristicCode != "" {
		if err := c.attach(compID, vocabulary.PropCharacteristicCode, ontology.StringValue(comp.CharacteristicCode)); err != nil {
			return err
		}
	}

	bomID := vocabulary.BomIRI(masterCode, comp.Code, comp.Sequence)
	if _, err := c.graph.EnsureNode(bomID); err != nil {
		return err
	}
	if err := c.graph.AddType(bomID, vocabulary.ClassBom); err != nil {
		return err
	}
	if err := c.graph.AddRef(bomID, vocabulary.PropHasMasterItem, masterID); err != nil {
		return err
	}
	if err := c.graph.AddRef(bomID, vocabulary.PropHasComponentItem, compID); err != nil {
		return err
	}
	if err := c.graph.AddRef(masterID, vocabulary.PropHasBom, bomID); err != nil {
		return err
	}

	if err := c.attach(bomID, vocabulary.PropHasQuantity, ontology.FloatValue(comp.Quantity)); err != nil {
		return err
	}
	if err := c.attach(bomID, vocabulary.PropHasSequence, ontology.IntValue(comp.Sequence)); err != nil {
		return err
	}
	if !comp.EffectiveDate.IsZero() {
		if err := c.attach(bomID, vocabulary.PropHasEffectiveDate, ontology.DateValue(comp.EffectiveDate)); err != nil {
			return err
		}
	}
	if !comp.ExpiryDate.IsZero() {
		if err := c.attach(bomID, vocabulary.PropHasExpiryDate, ontology.DateValue(comp.ExpiryDate)); err != nil {
			return err
		}
	}

	if err := c.graph.AddRef(masterID, vocabulary.PropHasComponent, compID); err != nil {
		return err
	}
	if err := c.graph.AddRef(compID, vocabulary.PropIsUsedIn, masterID); err != nil {
		return err
	}

	return c.applyCharacteristicWindow(masterID, comp.Code)
}

// applyCharacteristicWindow consults the two lookup tables over the
// component code window [2,5) and attaches the matched value to the master
// item, mirroring the source ERP convention of deriving master-level
// mounting attributes from component codes.
func (c *Converter) applyCharacteristicWindow(masterID, componentCode string) error {
	if len(componentCode) < 5 {
		return nil
	}
	window := componentCode[2:5]

	if v, ok := installationCodes[window]; ok {
		return c.attach(masterID, vocabulary.PropHasInstallationType, ontology.StringValue(v))
	}
	if v, ok := shaftEndJoinCodes[window]; ok {
		return c.attach(masterID, vocabulary.PropHasShaftEndJoin, ontology.StringValue(v))
	}
	return nil
}

// attach writes a literal under the schema's property semantics, with one
// extra rule for re-conversion: a non-functional property never accumulates
// the same value twice.
func (c *Converter) attach(id, property string, v ontology.Value) error {
	if !c.schema.IsFunctional(property) {
		if existing, ok := c.graph.Property(id, property); ok {
			for _, e := range existing {
				if e == v {
					return nil
				}
			}
		}
	}
	return c.schema.SetChecked(c.graph, id, property, v)
}

func (c *Converter) recordConversion(entity, status string) {
	if c.metrics != nil {
		c.metrics.RecordConversion(entity, status)
	}
}
