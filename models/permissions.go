// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// AppPermissions describes what a single owner is allowed to do.
type AppPermissions struct {
	OwnerID            string `json:"owner_id"`
	CanCompleteTasks   bool   `json:"can_complete_tasks"`
	CanDeleteTasks     bool   `json:"can_delete_tasks"`
	CanAddExpenses     bool   `json:"can_add_expenses"`
	CanApproveExpenses bool   `json:"can_approve_expenses"`
	CanManageTags      bool   `json:"can_manage_tags"`
}

// TableName returns the name of the remote table associated with AppPermissions.
func (p AppPermissions) TableName() string {
	return "permissions"
}

// PermissionsByOwner is the local shape of the permissions collection: a
// mapping keyed by owner id that remembers insertion order. Go maps do not,
// and the remote upsert receives the values in the order owners were added.
//
// The zero value is an empty mapping ready for use.
type PermissionsByOwner struct {
	keys   []string
	values map[string]AppPermissions
}

// NewPermissionsByOwner builds a mapping from perms, keyed by OwnerID, in the
// given order. A repeated owner id overwrites the earlier value in place.
func NewPermissionsByOwner(perms ...AppPermissions) PermissionsByOwner {
	var p PermissionsByOwner
	for _, perm := range perms {
		p.Set(perm.OwnerID, perm)
	}
	return p
}

// Set stores perm under ownerID. Existing keys keep their position.
func (p *PermissionsByOwner) Set(ownerID string, perm AppPermissions) {
	if p.values == nil {
		p.values = make(map[string]AppPermissions)
	}
	if _, ok := p.values[ownerID]; !ok {
		p.keys = append(p.keys, ownerID)
	}
	p.values[ownerID] = perm
}

// Get returns the permissions stored for ownerID.
func (p PermissionsByOwner) Get(ownerID string) (AppPermissions, bool) {
	perm, ok := p.values[ownerID]
	return perm, ok
}

// Delete removes ownerID from the mapping.
func (p *PermissionsByOwner) Delete(ownerID string) {
	if _, ok := p.values[ownerID]; !ok {
		return
	}
	delete(p.values, ownerID)
	for i, k := range p.keys {
		if k == ownerID {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of owners in the mapping.
func (p PermissionsByOwner) Len() int {
	return len(p.keys)
}

// Keys returns the owner ids in insertion order.
func (p PermissionsByOwner) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Values returns the stored permissions in insertion order.
func (p PermissionsByOwner) Values() []AppPermissions {
	values := make([]AppPermissions, 0, len(p.keys))
	for _, k := range p.keys {
		values = append(values, p.values[k])
	}
	return values
}

// Clone returns an independent copy of the mapping.
func (p PermissionsByOwner) Clone() PermissionsByOwner {
	var c PermissionsByOwner
	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}
	return c
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion order.
func (p PermissionsByOwner) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the order keys appear in.
func (p *PermissionsByOwner) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = PermissionsByOwner{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("permissions: expected JSON object")
	}

	var out PermissionsByOwner
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("permissions: unexpected key %v", tok)
		}

		var perm AppPermissions
		if err = dec.Decode(&perm); err != nil {
			return fmt.Errorf("permissions: decode %q: %w", key, err)
		}
		out.Set(key, perm)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}
