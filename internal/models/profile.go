package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Profile represents the free-text career profile owned by one account
type Profile struct {
	ID          int64     `json:"id" db:"id"`
	AccountID   int64     `json:"user_id" db:"account_id"`
	Name        *string   `json:"name" db:"name"`
	CareerGoals *string   `json:"career_goals" db:"career_goals"`
	Education   *string   `json:"education" db:"education"`
	Skills      *string   `json:"skills" db:"skills"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// OptionalString is one field of a partial update. Set is false when the
// field was absent; a present JSON null sets it with a nil Value.
type OptionalString struct {
	Value *string
	Set   bool
}

// SetString returns a present field holding s.
func SetString(s string) OptionalString {
	return OptionalString{Value: &s, Set: true}
}

// ClearString returns a present field that clears the stored value.
func ClearString() OptionalString {
	return OptionalString{Set: true}
}

// UnmarshalJSON marks the field present. It is only called for keys that
// appear in the input.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// ProfileUpdate carries a partial profile change. Fields that are not Set are
// left untouched.
type ProfileUpdate struct {
	Name        OptionalString
	CareerGoals OptionalString
	Education   OptionalString
	Skills      OptionalString
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return !u.Name.Set && !u.CareerGoals.Set && !u.Education.Set && !u.Skills.Set
}

// Apply copies the set fields of u onto p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name.Set {
		p.Name = u.Name.Value
	}
	if u.CareerGoals.Set {
		p.CareerGoals = u.CareerGoals.Value
	}
	if u.Education.Set {
		p.Education = u.Education.Value
	}
	if u.Skills.Set {
		p.Skills = u.Skills.Value
	}
}
