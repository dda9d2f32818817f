// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (lookup targets,
// reconnaissance dossiers, learning progress and news articles) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
