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
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout of a catalog:
//
//	entities:
//	  - name: SalesOrder
//	    keys: [ID]
//	    properties:
//	      - {name: ID, column: id, type: Edm.Int64}
//	      - {name: Status, type: Edm.String, host: enum, enum: {name: OrderStatus, members: [OPEN, CLOSED]}}
//	      - {name: Customer, column: customer, navigation: Customer}
type catalogFile struct {
	Entities []entityFile `yaml:"entities"`
}

type entityFile struct {
	Name       string         `yaml:"name"`
	Keys       []string       `yaml:"keys"`
	Properties []propertyFile `yaml:"properties"`
}

type propertyFile struct {
	Name       string    `yaml:"name"`
	Column     string    `yaml:"column"`
	Type       string    `yaml:"type"`
	Host       string    `yaml:"host"`
	HostName   string    `yaml:"hostName"`
	Enum       *EnumType `yaml:"enum"`
	Navigation string    `yaml:"navigation"`
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog decodes a YAML catalog and validates kinds, host types, keys
// and navigation targets.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	entities := make([]*EntityType, 0, len(doc.Entities))
	for _, ef := range doc.Entities {
		if ef.Name == "" {
			return nil, fmt.Errorf("entity without name")
		}
		et := &EntityType{
			Name:       ef.Name,
			Properties: make(map[string]*Property, len(ef.Properties)),
			Keys:       ef.Keys,
		}
		for _, pf := range ef.Properties {
			p, err := pf.build()
			if err != nil {
				return nil, fmt.Errorf("entity %s: %w", ef.Name, err)
			}
			et.Properties[p.Name] = p
		}
		for _, k := range et.Keys {
			p, ok := et.Properties[k]
			if !ok {
				return nil, fmt.Errorf("entity %s: key %w: %s", ef.Name, ErrUnknownProperty, k)
			}
			if p.Navigation {
				return nil, fmt.Errorf("entity %s: key %s is a navigation property", ef.Name, k)
			}
		}
		entities = append(entities, et)
	}

	catalog := NewCatalog(entities...)
	for _, et := range entities {
		for _, p := range et.Properties {
			if !p.Navigation {
				continue
			}
			if _, err := catalog.Entity(p.Target); err != nil {
				return nil, fmt.Errorf("navigation %s.%s: %w", et.Name, p.Name, err)
			}
		}
	}
	return catalog, nil
}

func (pf propertyFile) build() (*Property, error) {
	if pf.Name == "" {
		return nil, fmt.Errorf("property without name")
	}
	p := &Property{Name: pf.Name, InternalName: pf.Column}
	if pf.Navigation != "" {
		p.Navigation = true
		p.Target = pf.Navigation
		return p, nil
	}

	kind, err := ParseValueKind(pf.Type)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", pf.Name, err)
	}
	p.Kind = kind

	host, err := ParseHostType(pf.Host)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", pf.Name, err)
	}
	if host == HostEnum && (pf.Enum == nil || len(pf.Enum.Members) == 0) {
		return nil, fmt.Errorf("property %s: enum host type without members", pf.Name)
	}
	if host != HostDefault || pf.HostName != "" {
		p.Hint = &HostHint{Type: host, Name: pf.HostName, Enum: pf.Enum}
	}
	return p, nil
}
