// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (results, requests, sentinel errors) and contracts
// (interfaces) only; the network model itself lives in internal/network.
package domain
