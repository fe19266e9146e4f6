// Package core contains the business logic for the Media Search API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SearchResult, TypeFilter, UploadedFile)
// - providers: One adapter per external content catalog
// - search: Type routing and concurrent result aggregation
// - upload: Validated local file storage
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
package core
