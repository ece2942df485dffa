package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note hangs off a food by raw string id. There is no referential
// integrity: deleting a food leaves its notes orphaned.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FoodID    string             `bson:"foodId,omitempty"`
	AddedDate string             `bson:"addedDate,omitempty"`

	Extra map[string]interface{} `bson:",inline"`
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.Extra = make(map[string]interface{})
	for k, v := range raw {
		s, isStr := v.(string)
		switch {
		case k == "_id" && isStr:
			if oid, err := primitive.ObjectIDFromHex(s); err == nil {
				n.ID = oid
				continue
			}
		case k == "foodId" && isStr:
			n.FoodID = s
			continue
		case k == "addedDate" && isStr:
			n.AddedDate = s
			continue
		}
		n.Extra[k] = v
	}
	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(n.Extra)+3)
	for k, v := range n.Extra {
		out[k] = v
	}
	if !n.ID.IsZero() {
		out["_id"] = n.ID.Hex()
	}
	setIfPresent(out, "foodId", n.FoodID)
	setIfPresent(out, "addedDate", n.AddedDate)
	return json.Marshal(out)
}
