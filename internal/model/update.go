package model

import "encoding/json"

// Update payloads must distinguish an explicit null (clear the stored
// value) from an absent key (keep it). The decoded pointer fields cannot
// carry that difference on their own, so each update shape also records
// which keys the payload provided.

func providedKeys(data []byte) map[string]bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	keys := make(map[string]bool, len(raw))
	for key := range raw {
		keys[key] = true
	}
	return keys
}

func (u *UpdateClient) UnmarshalJSON(data []byte) error {
	type updateClient UpdateClient
	var decoded updateClient
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = UpdateClient(decoded)
	u.provided = providedKeys(data)
	return nil
}

// Provided reports whether the payload carried the key, even as null.
func (u *UpdateClient) Provided(key string) bool { return u.provided[key] }

func (u *UpdateProperty) UnmarshalJSON(data []byte) error {
	type updateProperty UpdateProperty
	var decoded updateProperty
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = UpdateProperty(decoded)
	u.provided = providedKeys(data)
	return nil
}

func (u *UpdateProperty) Provided(key string) bool { return u.provided[key] }

func (u *UpdateMeeting) UnmarshalJSON(data []byte) error {
	type updateMeeting UpdateMeeting
	var decoded updateMeeting
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = UpdateMeeting(decoded)
	u.provided = providedKeys(data)
	return nil
}

func (u *UpdateMeeting) Provided(key string) bool { return u.provided[key] }

func (u *UpdateCustomField) UnmarshalJSON(data []byte) error {
	type updateCustomField UpdateCustomField
	var decoded updateCustomField
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = UpdateCustomField(decoded)
	u.provided = providedKeys(data)
	return nil
}

func (u *UpdateCustomField) Provided(key string) bool { return u.provided[key] }
