// Package enum provides closed sets of named, integer-valued members
// ("smart enums"). A concrete type embeds Base, declares its members as
// package-level values and hands them to Declare; the returned Registry
// resolves members by value or by name.
//
// Typical usage:
//
//	type Status struct {
//	    enum.Base
//	}
//
//	var (
//	    Active   = &Status{enum.New(1, "Active")}
//	    Inactive = &Status{enum.New(2, "Inactive")}
//	)
//
//	var statuses = enum.Declare(func() []*Status { return []*Status{Active, Inactive} })
//
//	func (*Status) Enumeration() *enum.Registry[*Status] { return statuses }
//
//	s, ok := enum.FromValue[*Status](1) // Active, true
package enum
