package order

// HazardousOrder carries a handling instruction. Whether it is accepted depends
// only on the exact text of that instruction.
type HazardousOrder struct {
	header
	instruction string
}

// NewHazardousOrder builds a hazardous order with a fresh identifier. The
// instruction is stored verbatim; an empty instruction is allowed.
func NewHazardousOrder(destination, instruction string) (*HazardousOrder, error) {
	h, err := newHeader(destination)
	if err != nil {
		return nil, err
	}

	return &HazardousOrder{header: h, instruction: instruction}, nil
}

// Instruction returns the handling directive.
func (o *HazardousOrder) Instruction() string {
	return o.instruction
}

func (o *HazardousOrder) Kind() Kind {
	return Hazardous
}

func (o *HazardousOrder) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.validate()
}
