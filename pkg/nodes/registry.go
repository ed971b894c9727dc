package nodes

// factories maps type tags to constructors used during document decoding.
// Decoded records are merged over the freshly constructed node in one atomic
// replace, so the constructor arguments stay empty here.
var factories = map[string]func() Node{
	TagProject:               func() Node { return NewProject("") },
	TagCollection:            func() Node { return NewCollection("") },
	TagExperiment:            func() Node { return NewExperiment("") },
	TagInventory:             func() Node { return NewInventory("") },
	TagMaterial:              func() Node { return NewMaterial("") },
	TagProcess:               func() Node { return NewProcess("", "") },
	TagData:                  func() Node { return NewData("", "") },
	TagComputation:           func() Node { return NewComputation("", "") },
	TagComputationProcess:    func() Node { return NewComputationProcess("", "") },
	TagIngredient:            func() Node { return NewIngredient(nil) },
	TagQuantity:              func() Node { return NewQuantity("", nil, "") },
	TagProperty:              func() Node { return NewProperty("", "", nil, "") },
	TagCondition:             func() Node { return NewCondition("", "", nil, "") },
	TagEquipment:             func() Node { return NewEquipment("") },
	TagAlgorithm:             func() Node { return NewAlgorithm("", "") },
	TagParameter:             func() Node { return NewParameter("", nil, "") },
	TagCitation:              func() Node { return NewCitation("", nil) },
	TagReference:             func() Node { return NewReference("", "") },
	TagSoftware:              func() Node { return NewSoftware("", "") },
	TagSoftwareConfiguration: func() Node { return NewSoftwareConfiguration(nil) },
	TagFile:                  func() Node { return NewFile("", "", "", "") },
	TagUser:                  func() Node { return NewUser("") },
}

// KnownTag reports whether tag names a registered node type.
func KnownTag(tag string) bool {
	_, ok := factories[tag]
	return ok
}
