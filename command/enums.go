package command

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// FindOrCreateEnum returns the index of the enum of the type passed in pk.Enums, appending the enum with
// the options passed if it does not exist yet.
func FindOrCreateEnum(pk *packet.AvailableCommands, enumType string, options []string) uint32 {
	for i, e := range pk.Enums {
		if e.Type == enumType {
			return uint32(i)
		}
	}
	// Enum values are shared between all enums of the packet, so only append the ones not yet present.
	valueIndex := make(map[string]uint32, len(pk.EnumValues))
	for i, v := range pk.EnumValues {
		valueIndex[v] = uint32(i)
	}
	valueIndices := make([]uint32, 0, len(options))
	for _, opt := range options {
		idx, ok := valueIndex[opt]
		if !ok {
			idx = uint32(len(pk.EnumValues))
			pk.EnumValues = append(pk.EnumValues, opt)
			valueIndex[opt] = idx
		}
		valueIndices = append(valueIndices, idx)
	}
	pk.Enums = append(pk.Enums, protocol.CommandEnum{Type: enumType, ValueIndices: valueIndices})
	return uint32(len(pk.Enums) - 1)
}

// MakeEnumParam returns a parameter taking one of the options of the enum at enumIndex.
func MakeEnumParam(name string, enumIndex uint32, optional bool) protocol.CommandParameter {
	return protocol.CommandParameter{
		Name:     name,
		Type:     protocol.CommandArgValid | protocol.CommandArgEnum | enumIndex,
		Optional: optional,
	}
}
