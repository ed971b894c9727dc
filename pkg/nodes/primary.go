package nodes

// nodeAttrs holds the fields every node record carries: the type discriminant
// list, the process-local uid, and the stable platform identifier once known.
// Every attribute record embeds it by value; subtype records extend their
// supertype's record by added fields, never by overriding.
type nodeAttrs struct {
	Node []string `json:"node"`
	UID  string   `json:"uid"`
	UUID string   `json:"uuid,omitempty"`
}

func (a *nodeAttrs) commonAttrs() *nodeAttrs { return a }

// primaryAttrs holds the fields shared by all primary (aggregate-level)
// nodes.
type primaryAttrs struct {
	nodeAttrs
	Name         string `json:"name,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Locked       bool   `json:"locked,omitempty"`
	Public       bool   `json:"public,omitempty"`
	ModelVersion string `json:"model_version,omitempty"`
	CreatedBy    *User  `json:"created_by,omitempty"`
	UpdatedBy    *User  `json:"updated_by,omitempty"`
}

// Type tags serialized in the "node" discriminant list.
const (
	TagProject               = "Project"
	TagCollection            = "Collection"
	TagExperiment            = "Experiment"
	TagInventory             = "Inventory"
	TagMaterial              = "Material"
	TagProcess               = "Process"
	TagData                  = "Data"
	TagComputation           = "Computation"
	TagComputationProcess    = "ComputationProcess"
	TagIngredient            = "Ingredient"
	TagQuantity              = "Quantity"
	TagProperty              = "Property"
	TagCondition             = "Condition"
	TagEquipment             = "Equipment"
	TagAlgorithm             = "Algorithm"
	TagParameter             = "Parameter"
	TagCitation              = "Citation"
	TagReference             = "Reference"
	TagSoftware              = "Software"
	TagSoftwareConfiguration = "SoftwareConfiguration"
	TagFile                  = "File"
	TagUser                  = "User"
)

// ProjectAttrs is the attribute record of a Project.
type ProjectAttrs struct {
	primaryAttrs
	Collection []*Collection `json:"collection,omitempty"`
	Material   []*Material   `json:"material,omitempty"`
	Member     []*User       `json:"member,omitempty"`
}

// Project is the aggregate root of a document graph. Its material list,
// together with every reachable inventory, is the authoritative owner of all
// materials in the graph; its collections own the experiments.
type Project struct {
	baseNode
	attrs ProjectAttrs
}

// NewProject creates a project with a fresh temporary uid.
func NewProject(name string) *Project {
	p := &Project{}
	p.attrs.Name = name
	p.init(p, &p.attrs, TagProject)
	return p
}

// Attrs returns a copy of the current attribute record.
func (p *Project) Attrs() ProjectAttrs { return p.attrs }

// CollectionAttrs is the attribute record of a Collection.
type CollectionAttrs struct {
	primaryAttrs
	Experiment []*Experiment `json:"experiment,omitempty"`
	Inventory  []*Inventory  `json:"inventory,omitempty"`
	DOI        string        `json:"doi,omitempty"`
	Citation   []*Citation   `json:"citation,omitempty"`
}

// Collection groups experiments and inventories under a project.
type Collection struct {
	baseNode
	attrs CollectionAttrs
}

func NewCollection(name string) *Collection {
	c := &Collection{}
	c.attrs.Name = name
	c.init(c, &c.attrs, TagCollection)
	return c
}

func (c *Collection) Attrs() CollectionAttrs { return c.attrs }

// ExperimentAttrs is the attribute record of an Experiment.
type ExperimentAttrs struct {
	primaryAttrs
	Process            []*Process            `json:"process,omitempty"`
	Computation        []*Computation        `json:"computation,omitempty"`
	ComputationProcess []*ComputationProcess `json:"computation_process,omitempty"`
	Data               []*Data               `json:"data,omitempty"`
	Funding            []string              `json:"funding,omitempty"`
	Citation           []*Citation           `json:"citation,omitempty"`
}

// Experiment owns the processes, computations, computation processes, and
// data produced within it; anything of those kinds reachable in the project
// graph but listed in no experiment is orphaned.
type Experiment struct {
	baseNode
	attrs ExperimentAttrs
}

func NewExperiment(name string) *Experiment {
	e := &Experiment{}
	e.attrs.Name = name
	e.init(e, &e.attrs, TagExperiment)
	return e
}

func (e *Experiment) Attrs() ExperimentAttrs { return e.attrs }

// InventoryAttrs is the attribute record of an Inventory.
type InventoryAttrs struct {
	primaryAttrs
	Material []*Material `json:"material,omitempty"`
}

// Inventory is a named collection of materials; membership in an inventory
// counts as project-level ownership of a material.
type Inventory struct {
	baseNode
	attrs InventoryAttrs
}

func NewInventory(name string, material ...*Material) *Inventory {
	inv := &Inventory{}
	inv.attrs.Name = name
	inv.attrs.Material = material
	inv.init(inv, &inv.attrs, TagInventory)
	return inv
}

func (inv *Inventory) Attrs() InventoryAttrs { return inv.attrs }

// MaterialAttrs is the attribute record of a Material.
type MaterialAttrs struct {
	primaryAttrs
	Component []*Material `json:"component,omitempty"`
	Property  []*Property `json:"property,omitempty"`
	Keyword   []string    `json:"keyword,omitempty"`
	BigSMILES string      `json:"bigsmiles,omitempty"`
}

// Material is a physical substance used or produced in the project.
type Material struct {
	baseNode
	attrs MaterialAttrs
}

func NewMaterial(name string) *Material {
	m := &Material{}
	m.attrs.Name = name
	m.init(m, &m.attrs, TagMaterial)
	return m
}

func (m *Material) Attrs() MaterialAttrs { return m.attrs }

// ProcessAttrs is the attribute record of a Process.
type ProcessAttrs struct {
	primaryAttrs
	Type                string        `json:"type,omitempty"`
	Ingredient          []*Ingredient `json:"ingredient,omitempty"`
	Product             []*Material   `json:"product,omitempty"`
	Waste               []*Material   `json:"waste,omitempty"`
	PrerequisiteProcess []*Process    `json:"prerequisite_process,omitempty"`
	Condition           []*Condition  `json:"condition,omitempty"`
	Property            []*Property   `json:"property,omitempty"`
	Equipment           []*Equipment  `json:"equipment,omitempty"`
	Keyword             []string      `json:"keyword,omitempty"`
	Citation            []*Citation   `json:"citation,omitempty"`
}

// Process is an experimental step consuming ingredients and producing
// materials.
type Process struct {
	baseNode
	attrs ProcessAttrs
}

func NewProcess(name, procType string) *Process {
	p := &Process{}
	p.attrs.Name = name
	p.attrs.Type = procType
	p.init(p, &p.attrs, TagProcess)
	return p
}

func (p *Process) Attrs() ProcessAttrs { return p.attrs }

// DataAttrs is the attribute record of a Data node.
type DataAttrs struct {
	primaryAttrs
	Type               string                `json:"type,omitempty"`
	File               []*File               `json:"file,omitempty"`
	Material           []*Material           `json:"material,omitempty"`
	Process            []*Process            `json:"process,omitempty"`
	Computation        []*Computation        `json:"computation,omitempty"`
	ComputationProcess []*ComputationProcess `json:"computation_process,omitempty"`
	Citation           []*Citation           `json:"citation,omitempty"`
}

// Data is a measured or computed dataset attached to the graph via files.
type Data struct {
	baseNode
	attrs DataAttrs
}

func NewData(name, dataType string) *Data {
	d := &Data{}
	d.attrs.Name = name
	d.attrs.Type = dataType
	d.init(d, &d.attrs, TagData)
	return d
}

func (d *Data) Attrs() DataAttrs { return d.attrs }

// ComputationAttrs is the attribute record of a Computation.
type ComputationAttrs struct {
	primaryAttrs
	Type                    string                   `json:"type,omitempty"`
	InputData               []*Data                  `json:"input_data,omitempty"`
	OutputData              []*Data                  `json:"output_data,omitempty"`
	SoftwareConfiguration   []*SoftwareConfiguration `json:"software_configuration,omitempty"`
	Condition               []*Condition             `json:"condition,omitempty"`
	PrerequisiteComputation *Computation             `json:"prerequisite_computation,omitempty"`
	Citation                []*Citation              `json:"citation,omitempty"`
}

// Computation is an in-silico analysis or simulation step.
type Computation struct {
	baseNode
	attrs ComputationAttrs
}

func NewComputation(name, compType string) *Computation {
	c := &Computation{}
	c.attrs.Name = name
	c.attrs.Type = compType
	c.init(c, &c.attrs, TagComputation)
	return c
}

func (c *Computation) Attrs() ComputationAttrs { return c.attrs }

// ComputationProcessAttrs is the attribute record of a ComputationProcess.
type ComputationProcessAttrs struct {
	primaryAttrs
	Type                  string                   `json:"type,omitempty"`
	InputData             []*Data                  `json:"input_data,omitempty"`
	OutputData            []*Data                  `json:"output_data,omitempty"`
	Ingredient            []*Ingredient            `json:"ingredient,omitempty"`
	SoftwareConfiguration []*SoftwareConfiguration `json:"software_configuration,omitempty"`
	Condition             []*Condition             `json:"condition,omitempty"`
	Property              []*Property              `json:"property,omitempty"`
	Citation              []*Citation              `json:"citation,omitempty"`
}

// ComputationProcess is a simulated process: a computation that consumes
// ingredients like an experimental step.
type ComputationProcess struct {
	baseNode
	attrs ComputationProcessAttrs
}

func NewComputationProcess(name, procType string) *ComputationProcess {
	cp := &ComputationProcess{}
	cp.attrs.Name = name
	cp.attrs.Type = procType
	cp.init(cp, &cp.attrs, TagComputationProcess)
	return cp
}

func (cp *ComputationProcess) Attrs() ComputationProcessAttrs { return cp.attrs }
