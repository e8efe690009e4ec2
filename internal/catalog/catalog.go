// Package catalog holds the static registry of selectable libraries and
// merges per-category picks into a single selection.
package catalog

import "slices"

// Category groups libraries for prompting.
type Category string

const (
	CategoryState         Category = "State Management"
	CategoryDataFetching  Category = "Data Fetching"
	CategoryRouting       Category = "Routing"
	CategoryStyling       Category = "Styling"
	CategoryUIComponents  Category = "UI Components"
	CategoryForms         Category = "Forms & Validation"
	CategoryNotifications Category = "Notifications"
	CategoryTesting       Category = "Testing"
	CategoryUtilities     Category = "Utilities"
)

// Well-known identifiers consulted by the generators.
const (
	IDReactQuery = "@tanstack/react-query"
	IDRouter     = "react-router-dom"
	IDTailwind   = "tailwindcss"
	IDShadcn     = "shadcn-ui"
	IDHotToast   = "react-hot-toast"
	IDVitest     = "vitest"
)

// Library describes a selectable option.
type Library struct {
	Name     string   // Display name
	ID       string   // npm package name, or a meta identifier
	Category Category // Prompt group
	Default  bool     // Pre-selected in the prompt
}

var categories = []Category{
	CategoryState,
	CategoryDataFetching,
	CategoryRouting,
	CategoryStyling,
	CategoryUIComponents,
	CategoryForms,
	CategoryNotifications,
	CategoryTesting,
	CategoryUtilities,
}

var libraries = []Library{
	{Name: "Zustand", ID: "zustand", Category: CategoryState, Default: true},
	{Name: "Redux Toolkit", ID: "@reduxjs/toolkit", Category: CategoryState},
	{Name: "Jotai", ID: "jotai", Category: CategoryState},

	{Name: "TanStack Query", ID: IDReactQuery, Category: CategoryDataFetching, Default: true},
	{Name: "Axios", ID: "axios", Category: CategoryDataFetching, Default: true},
	{Name: "SWR", ID: "swr", Category: CategoryDataFetching},

	{Name: "React Router", ID: IDRouter, Category: CategoryRouting, Default: true},

	{Name: "Tailwind CSS", ID: IDTailwind, Category: CategoryStyling, Default: true},
	{Name: "Styled Components", ID: "styled-components", Category: CategoryStyling},

	{Name: "shadcn/ui", ID: IDShadcn, Category: CategoryUIComponents},
	{Name: "Headless UI", ID: "@headlessui/react", Category: CategoryUIComponents},
	{Name: "Lucide Icons", ID: "lucide-react", Category: CategoryUIComponents},

	{Name: "React Hook Form", ID: "react-hook-form", Category: CategoryForms},
	{Name: "Zod", ID: "zod", Category: CategoryForms},

	{Name: "React Hot Toast", ID: IDHotToast, Category: CategoryNotifications},

	{Name: "Vitest", ID: IDVitest, Category: CategoryTesting},

	{Name: "date-fns", ID: "date-fns", Category: CategoryUtilities},
	{Name: "Lodash", ID: "lodash", Category: CategoryUtilities},
}

var byID = func() map[string]Library {
	m := make(map[string]Library, len(libraries))
	for _, lib := range libraries {
		m[lib.ID] = lib
	}
	return m
}()

// Categories returns the categories in declaration order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Libraries returns every library in declaration order.
func Libraries() []Library {
	return slices.Clone(libraries)
}

// ByCategory returns the libraries of one category in declaration order.
func ByCategory(c Category) []Library {
	var out []Library
	for _, lib := range libraries {
		if lib.Category == c {
			out = append(out, lib)
		}
	}
	return out
}

// Lookup returns the library registered under id.
func Lookup(id string) (Library, bool) {
	lib, ok := byID[id]
	return lib, ok
}

// Defaults returns the identifiers of default-selected libraries for c.
func Defaults(c Category) []string {
	var ids []string
	for _, lib := range ByCategory(c) {
		if lib.Default {
			ids = append(ids, lib.ID)
		}
	}
	return ids
}
