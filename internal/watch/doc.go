// Package watch reports when document files change, using fsnotify on
// their parent directories. It backs the CLI's render --watch mode.
//
//	w := watch.New(watch.Config{Paths: []string{"menu.yaml"}})
//	w.OnChange(func(c watch.Change) { rebuild(c.Path) })
//	err := w.Start(ctx)
package watch
