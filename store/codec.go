package store

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldType       = "type"
	fieldProperties = "properties"
)

// marshalEntity encodes the type name and the ordered properties as a
// protobuf Struct. The id lives in the key, not in the value.
func marshalEntity(entity Entity) ([]byte, error) {
	properties := make([]any, 0, len(entity.Properties))
	for _, p := range entity.Properties {
		properties = append(properties, []any{p.Name, p.Value})
	}
	value, err := structpb.NewStruct(map[string]any{
		fieldType:       entity.TypeName,
		fieldProperties: properties,
	})
	if err != nil {
		return nil, fmt.Errorf("encode entity %d: %w", entity.ID, err)
	}
	return proto.Marshal(value)
}

func unmarshalEntity(id int64, data []byte) (Entity, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(data, &value); err != nil {
		return Entity{}, fmt.Errorf("decode entity %d: %w", id, err)
	}
	entity := Entity{ID: id, TypeName: value.GetFields()[fieldType].GetStringValue()}
	for _, pair := range value.GetFields()[fieldProperties].GetListValue().GetValues() {
		values := pair.GetListValue().GetValues()
		if len(values) != 2 {
			return Entity{}, fmt.Errorf("decode entity %d: property with %d values", id, len(values))
		}
		entity.Properties = append(entity.Properties, Property{
			EntityID: id,
			Name:     values[0].GetStringValue(),
			Value:    values[1].GetStringValue(),
		})
	}
	return entity, nil
}
