package generator

import (
	"strings"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// entryLayers are applied in fixed precedence, independent of selection
// order: strict mode, data client, router, then the toaster as a sibling
// of the application element.
var entryLayers = []Layer{
	{
		Kind:    LayerWrapper,
		Imports: []string{"import React from 'react'", "import ReactDOM from 'react-dom/client'"},
		Open:    "<React.StrictMode>",
		Close:   "</React.StrictMode>",
	},
	{
		ID:      catalog.IDReactQuery,
		Kind:    LayerWrapper,
		Imports: []string{"import { QueryClient, QueryClientProvider } from '@tanstack/react-query'"},
		Setup:   []string{"const queryClient = new QueryClient()"},
		Open:    "<QueryClientProvider client={queryClient}>",
		Close:   "</QueryClientProvider>",
	},
	{
		ID:      catalog.IDRouter,
		Kind:    LayerWrapper,
		Imports: []string{"import { BrowserRouter } from 'react-router-dom'"},
		Open:    "<BrowserRouter>",
		Close:   "</BrowserRouter>",
	},
	{
		ID:      catalog.IDHotToast,
		Kind:    LayerSibling,
		Imports: []string{"import { Toaster } from 'react-hot-toast'"},
		Element: "<Toaster />",
	},
}

// appElement is the leaf of the entry render tree.
const appElement = "<App />"

// EntryPoint returns the contents of src/main.tsx.
func EntryPoint(sel models.Selection) string {
	var b strings.Builder

	for _, imp := range collectImports(entryLayers, sel.Has) {
		b.WriteString(imp + "\n")
	}
	b.WriteString("import App from './App'\n")
	b.WriteString("import './styles/globals.css'\n")

	if setup := collectSetup(entryLayers, sel.Has); len(setup) > 0 {
		b.WriteString("\n")
		for _, s := range setup {
			b.WriteString(s + "\n")
		}
	}

	b.WriteString("\nReactDOM.createRoot(document.getElementById('root')!).render(\n")
	b.WriteString(composeJSX(entryLayers, sel.Has, appElement, "  ", 1))
	b.WriteString(",\n)\n")

	return b.String()
}
