package generator

import (
	"fmt"

	"github.com/lithammer/dedent"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/internal/template"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// AppShell returns the contents of src/App.tsx: a single-route table when
// client-side routing is selected, a static welcome layout otherwise.
func AppShell(desc models.ProjectDescriptor) string {
	title := template.DisplayName(desc.Name)
	if desc.Selection.Has(catalog.IDRouter) {
		return routedApp(title)
	}
	return welcomeApp(title)
}

func routedApp(title string) string {
	return fmt.Sprintf(dedent.Dedent(`
		import { Route, Routes } from 'react-router-dom'

		function Home() {
		  return (
		    <main className="app">
		      <h1>%s</h1>
		      <p>Edit <code>src/App.tsx</code> to get started.</p>
		    </main>
		  )
		}

		function App() {
		  return (
		    <Routes>
		      <Route path="/" element={<Home />} />
		    </Routes>
		  )
		}

		export default App
		`)[1:], title)
}

func welcomeApp(title string) string {
	return fmt.Sprintf(dedent.Dedent(`
		function App() {
		  return (
		    <main className="app">
		      <h1>%s</h1>
		      <p>Edit <code>src/App.tsx</code> to get started.</p>
		    </main>
		  )
		}

		export default App
		`)[1:], title)
}
