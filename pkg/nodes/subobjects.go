package nodes

// Sub-entity node types. Their records embed nodeAttrs directly; they carry
// no primary-node bookkeeping fields.

// IngredientAttrs is the attribute record of an Ingredient.
type IngredientAttrs struct {
	nodeAttrs
	Material *Material   `json:"material,omitempty"`
	Quantity []*Quantity `json:"quantity,omitempty"`
	Keyword  []string    `json:"keyword,omitempty"`
}

// Ingredient ties a material and its quantities into a process. The material
// is used, not owned: it must also appear in the project's material list or
// an inventory, or the graph is invalid.
type Ingredient struct {
	baseNode
	attrs IngredientAttrs
}

func NewIngredient(material *Material, quantity ...*Quantity) *Ingredient {
	ing := &Ingredient{}
	ing.attrs.Material = material
	ing.attrs.Quantity = quantity
	ing.init(ing, &ing.attrs, TagIngredient)
	return ing
}

func (ing *Ingredient) Attrs() IngredientAttrs { return ing.attrs }

// QuantityAttrs is the attribute record of a Quantity.
type QuantityAttrs struct {
	nodeAttrs
	Key             string `json:"key,omitempty"`
	Value           any    `json:"value,omitempty"`
	Unit            string `json:"unit,omitempty"`
	Uncertainty     any    `json:"uncertainty,omitempty"`
	UncertaintyType string `json:"uncertainty_type,omitempty"`
}

// Quantity is an amount with a unit, e.g. mass of an ingredient.
type Quantity struct {
	baseNode
	attrs QuantityAttrs
}

func NewQuantity(key string, value any, unit string) *Quantity {
	q := &Quantity{}
	q.attrs.Key = key
	q.attrs.Value = value
	q.attrs.Unit = unit
	q.init(q, &q.attrs, TagQuantity)
	return q
}

func (q *Quantity) Attrs() QuantityAttrs { return q.attrs }

// PropertyAttrs is the attribute record of a Property.
type PropertyAttrs struct {
	nodeAttrs
	Key         string         `json:"key,omitempty"`
	Type        string         `json:"type,omitempty"`
	Value       any            `json:"value,omitempty"`
	Unit        string         `json:"unit,omitempty"`
	Uncertainty any            `json:"uncertainty,omitempty"`
	Component   []*Material    `json:"component,omitempty"`
	Condition   []*Condition   `json:"condition,omitempty"`
	Data        []*Data        `json:"data,omitempty"`
	Computation []*Computation `json:"computation,omitempty"`
	Citation    []*Citation    `json:"citation,omitempty"`
}

// Property is a measured or computed characteristic of a material or
// process. Data and computations it references are used, not owned.
type Property struct {
	baseNode
	attrs PropertyAttrs
}

func NewProperty(key, propType string, value any, unit string) *Property {
	p := &Property{}
	p.attrs.Key = key
	p.attrs.Type = propType
	p.attrs.Value = value
	p.attrs.Unit = unit
	p.init(p, &p.attrs, TagProperty)
	return p
}

func (p *Property) Attrs() PropertyAttrs { return p.attrs }

// ConditionAttrs is the attribute record of a Condition.
type ConditionAttrs struct {
	nodeAttrs
	Key        string  `json:"key,omitempty"`
	Type       string  `json:"type,omitempty"`
	Value      any     `json:"value,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Descriptor string  `json:"descriptor,omitempty"`
	Data       []*Data `json:"data,omitempty"`
}

// Condition is an environmental parameter under which a step ran.
type Condition struct {
	baseNode
	attrs ConditionAttrs
}

func NewCondition(key, condType string, value any, unit string) *Condition {
	c := &Condition{}
	c.attrs.Key = key
	c.attrs.Type = condType
	c.attrs.Value = value
	c.attrs.Unit = unit
	c.init(c, &c.attrs, TagCondition)
	return c
}

func (c *Condition) Attrs() ConditionAttrs { return c.attrs }

// EquipmentAttrs is the attribute record of an Equipment node.
type EquipmentAttrs struct {
	nodeAttrs
	Key         string       `json:"key,omitempty"`
	Description string       `json:"description,omitempty"`
	Condition   []*Condition `json:"condition,omitempty"`
	File        []*File      `json:"file,omitempty"`
	Citation    []*Citation  `json:"citation,omitempty"`
}

// Equipment is an instrument or vessel used by a process.
type Equipment struct {
	baseNode
	attrs EquipmentAttrs
}

func NewEquipment(key string) *Equipment {
	eq := &Equipment{}
	eq.attrs.Key = key
	eq.init(eq, &eq.attrs, TagEquipment)
	return eq
}

func (eq *Equipment) Attrs() EquipmentAttrs { return eq.attrs }

// AlgorithmAttrs is the attribute record of an Algorithm.
type AlgorithmAttrs struct {
	nodeAttrs
	Key       string       `json:"key,omitempty"`
	Type      string       `json:"type,omitempty"`
	Parameter []*Parameter `json:"parameter,omitempty"`
	Citation  []*Citation  `json:"citation,omitempty"`
}

// Algorithm describes a computational method and its parameters.
type Algorithm struct {
	baseNode
	attrs AlgorithmAttrs
}

func NewAlgorithm(key, algType string) *Algorithm {
	a := &Algorithm{}
	a.attrs.Key = key
	a.attrs.Type = algType
	a.init(a, &a.attrs, TagAlgorithm)
	return a
}

func (a *Algorithm) Attrs() AlgorithmAttrs { return a.attrs }

// ParameterAttrs is the attribute record of a Parameter.
type ParameterAttrs struct {
	nodeAttrs
	Key   string `json:"key,omitempty"`
	Value any    `json:"value,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

// Parameter is a single key/value input of an algorithm.
type Parameter struct {
	baseNode
	attrs ParameterAttrs
}

func NewParameter(key string, value any, unit string) *Parameter {
	p := &Parameter{}
	p.attrs.Key = key
	p.attrs.Value = value
	p.attrs.Unit = unit
	p.init(p, &p.attrs, TagParameter)
	return p
}

func (p *Parameter) Attrs() ParameterAttrs { return p.attrs }

// CitationAttrs is the attribute record of a Citation.
type CitationAttrs struct {
	nodeAttrs
	Type      string     `json:"type,omitempty"`
	Reference *Reference `json:"reference,omitempty"`
}

// Citation links a reference into the node that cites it.
type Citation struct {
	baseNode
	attrs CitationAttrs
}

func NewCitation(citeType string, ref *Reference) *Citation {
	c := &Citation{}
	c.attrs.Type = citeType
	c.attrs.Reference = ref
	c.init(c, &c.attrs, TagCitation)
	return c
}

func (c *Citation) Attrs() CitationAttrs { return c.attrs }

// ReferenceAttrs is the attribute record of a Reference.
type ReferenceAttrs struct {
	nodeAttrs
	Type      string   `json:"type,omitempty"`
	Title     string   `json:"title,omitempty"`
	Author    []string `json:"author,omitempty"`
	Journal   string   `json:"journal,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Year      int      `json:"year,omitempty"`
	Volume    int      `json:"volume,omitempty"`
	Pages     []int    `json:"pages,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	Website   string   `json:"website,omitempty"`
}

// Reference is a bibliographic record.
type Reference struct {
	baseNode
	attrs ReferenceAttrs
}

func NewReference(refType, title string) *Reference {
	r := &Reference{}
	r.attrs.Type = refType
	r.attrs.Title = title
	r.init(r, &r.attrs, TagReference)
	return r
}

func (r *Reference) Attrs() ReferenceAttrs { return r.attrs }

// SoftwareAttrs is the attribute record of a Software node.
type SoftwareAttrs struct {
	nodeAttrs
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Software identifies a program by name, version and source.
type Software struct {
	baseNode
	attrs SoftwareAttrs
}

func NewSoftware(name, version string) *Software {
	s := &Software{}
	s.attrs.Name = name
	s.attrs.Version = version
	s.init(s, &s.attrs, TagSoftware)
	return s
}

func (s *Software) Attrs() SoftwareAttrs { return s.attrs }

// SoftwareConfigurationAttrs is the attribute record of a
// SoftwareConfiguration.
type SoftwareConfigurationAttrs struct {
	nodeAttrs
	Software  *Software    `json:"software,omitempty"`
	Algorithm []*Algorithm `json:"algorithm,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Citation  []*Citation  `json:"citation,omitempty"`
}

// SoftwareConfiguration pins a software with the algorithms it ran.
type SoftwareConfiguration struct {
	baseNode
	attrs SoftwareConfigurationAttrs
}

func NewSoftwareConfiguration(software *Software) *SoftwareConfiguration {
	sc := &SoftwareConfiguration{}
	sc.attrs.Software = software
	sc.init(sc, &sc.attrs, TagSoftwareConfiguration)
	return sc
}

func (sc *SoftwareConfiguration) Attrs() SoftwareConfigurationAttrs { return sc.attrs }

// FileAttrs is the attribute record of a File node.
type FileAttrs struct {
	nodeAttrs
	Name           string `json:"name,omitempty"`
	Source         string `json:"source,omitempty"`
	Type           string `json:"type,omitempty"`
	Extension      string `json:"extension,omitempty"`
	DataDictionary string `json:"data_dictionary,omitempty"`
}

// File points at raw content backing a data node.
type File struct {
	baseNode
	attrs FileAttrs
}

func NewFile(name, source, fileType, extension string) *File {
	f := &File{}
	f.attrs.Name = name
	f.attrs.Source = source
	f.attrs.Type = fileType
	f.attrs.Extension = extension
	f.init(f, &f.attrs, TagFile)
	return f
}

func (f *File) Attrs() FileAttrs { return f.attrs }

// UserAttrs is the attribute record of a User.
type UserAttrs struct {
	nodeAttrs
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Orcid    string `json:"orcid,omitempty"`
}

// User identifies a platform account referenced by primary nodes.
type User struct {
	baseNode
	attrs UserAttrs
}

func NewUser(username string) *User {
	u := &User{}
	u.attrs.Username = username
	u.init(u, &u.attrs, TagUser)
	return u
}

func (u *User) Attrs() UserAttrs { return u.attrs }
