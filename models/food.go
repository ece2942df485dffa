package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a typed view over an open document: the fields the server reads
// are declared, everything else the client sent rides along in Extra and
// round-trips untouched.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FoodTitle   string             `bson:"foodTitle,omitempty"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	UserEmail   string             `bson:"userEmail,omitempty"`
	ExpiryDate  string             `bson:"expiryDate,omitempty"`
	AddedDate   string             `bson:"addedDate,omitempty"`

	Extra map[string]interface{} `bson:",inline"`
}

func (f *Food) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Extra = make(map[string]interface{})
	for k, v := range raw {
		s, isStr := v.(string)
		switch {
		case k == "_id" && isStr:
			if oid, err := primitive.ObjectIDFromHex(s); err == nil {
				f.ID = oid
				continue
			}
		case k == "foodTitle" && isStr:
			f.FoodTitle = s
			continue
		case k == "description" && isStr:
			f.Description = s
			continue
		case k == "category" && isStr:
			f.Category = s
			continue
		case k == "userEmail" && isStr:
			f.UserEmail = s
			continue
		case k == "expiryDate" && isStr:
			f.ExpiryDate = s
			continue
		case k == "addedDate" && isStr:
			f.AddedDate = s
			continue
		}
		f.Extra[k] = v
	}
	return nil
}

func (f Food) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(f.Extra)+7)
	for k, v := range f.Extra {
		out[k] = v
	}
	if !f.ID.IsZero() {
		out["_id"] = f.ID.Hex()
	}
	setIfPresent(out, "foodTitle", f.FoodTitle)
	setIfPresent(out, "description", f.Description)
	setIfPresent(out, "category", f.Category)
	setIfPresent(out, "userEmail", f.UserEmail)
	setIfPresent(out, "expiryDate", f.ExpiryDate)
	setIfPresent(out, "addedDate", f.AddedDate)
	return json.Marshal(out)
}

func setIfPresent(m map[string]interface{}, key, val string) {
	if val != "" {
		m[key] = val
	}
}
