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

package jpql

import (
	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
)

var (
	statusEnum = &edm.EnumType{Name: "Status", Members: []string{"Active", "Closed"}}

	propID       = &edm.Property{Name: "ID", Kind: edm.KindInt64}
	propName     = &edm.Property{Name: "Name", Kind: edm.KindString}
	propAmount   = &edm.Property{Name: "Amount", Kind: edm.KindInt32}
	propCategory = &edm.Property{Name: "Category", InternalName: "category", Kind: edm.KindString}
	propPrice    = &edm.Property{Name: "Price", Kind: edm.KindDecimal}
	propActive   = &edm.Property{Name: "Active", Kind: edm.KindBoolean}
	propStatus   = &edm.Property{Name: "Status", Kind: edm.KindString,
		Hint: &edm.HostHint{Type: edm.HostEnum, Enum: statusEnum}}
	propCode    = &edm.Property{Name: "Code", Kind: edm.KindString, Hint: &edm.HostHint{Type: edm.HostChar}}
	propToken   = &edm.Property{Name: "Token", Kind: edm.KindGuid}
	propCreated = &edm.Property{Name: "Created", Kind: edm.KindDateTime,
		Hint: &edm.HostHint{Type: edm.HostTime, Name: "sql.NullTime"}}
	propOpens = &edm.Property{Name: "Opens", Kind: edm.KindTime}

	propCustomer = &edm.Property{Name: "Customer", Kind: edm.KindUnknown, Navigation: true, Target: "Customer"}
	propAddress  = &edm.Property{Name: "Address", InternalName: "address", Kind: edm.KindUnknown, Navigation: true, Target: "Address"}
	propCity     = &edm.Property{Name: "City", InternalName: "city", Kind: edm.KindString}
)

func prop(p *edm.Property) *ast.Property {
	return ast.NewProperty(p)
}

func str(s string) *ast.Literal {
	return ast.NewLiteral("'"+s+"'", edm.KindString)
}

func lit(text string, kind edm.ValueKind) *ast.Literal {
	return ast.NewLiteral(text, kind)
}

func boolean(b bool) *ast.Literal {
	if b {
		return ast.NewLiteral("true", edm.KindBoolean)
	}
	return ast.NewLiteral("false", edm.KindBoolean)
}

func null() *ast.Literal {
	return ast.NewLiteral("null", edm.KindNull)
}

func bin(op ast.BinaryOp, l, r ast.Node) *ast.Binary {
	return ast.NewBinary(op, l, r)
}

// customerCity is Customer/Address/City.
func customerCity() *ast.Member {
	return ast.NewMember(ast.NewMember(prop(propCustomer), prop(propAddress)), prop(propCity))
}
