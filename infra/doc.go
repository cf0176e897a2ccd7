// Package infra contains technical adapters such as the holiday dataset
// loader, the calendar renderer and metrics exporters. These packages
// should depend only on the interfaces defined in the core packages.
package infra
