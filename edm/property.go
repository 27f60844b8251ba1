/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package edm

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownEntity is returned when an entity type is not in the catalog.
	ErrUnknownEntity = errors.New("unknown entity type")
	// ErrUnknownProperty is returned when a property is not declared on an entity type.
	ErrUnknownProperty = errors.New("unknown property")
)

// Property is the read-only metadata of a structural or navigation property.
type Property struct {
	// Name is the external (protocol) name.
	Name string
	// InternalName is the storage name used in the query language; empty
	// means the external name is used as is.
	InternalName string
	Kind         ValueKind
	Hint         *HostHint
	Navigation   bool
	// Target names the entity type reached through a navigation property.
	Target string
}

// MappedName returns the internal name when one is mapped, else Name.
func (p *Property) MappedName() string {
	if p.InternalName != "" {
		return p.InternalName
	}
	return p.Name
}

// IsEnum reports whether the property maps to a host enumeration.
func (p *Property) IsEnum() bool {
	return p != nil && p.Hint != nil && p.Hint.Type == HostEnum
}

// EntityType groups the properties of one entity and names its key.
type EntityType struct {
	Name       string
	Properties map[string]*Property
	Keys       []string
}

// Property looks up a property by external name.
func (e *EntityType) Property(name string) (*Property, error) {
	if p, ok := e.Properties[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownProperty, e.Name, name)
}

// KeyProperties returns the key properties in declaration order.
func (e *EntityType) KeyProperties() []*Property {
	props := make([]*Property, 0, len(e.Keys))
	for _, k := range e.Keys {
		if p, ok := e.Properties[k]; ok {
			props = append(props, p)
		}
	}
	return props
}

// Catalog is a static metadata lookup keyed by entity type name.
type Catalog struct {
	entities map[string]*EntityType
}

// NewCatalog builds a catalog from entity types.
func NewCatalog(entities ...*EntityType) *Catalog {
	c := &Catalog{entities: make(map[string]*EntityType, len(entities))}
	for _, e := range entities {
		c.entities[e.Name] = e
	}
	return c
}

// Entity looks up an entity type by name.
func (c *Catalog) Entity(name string) (*EntityType, error) {
	if e, ok := c.entities[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
}

// EntityNames lists the entity type names in sorted order.
func (c *Catalog) EntityNames() []string {
	names := make([]string, 0, len(c.entities))
	for n := range c.entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
