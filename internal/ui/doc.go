package ui

// Package ui contains the Fyne user interface of the application. It adapts
// Fyne pointer events to the overlay and slide-back controllers, renders
// their state, and hosts a demo feed of live streams with a settings dialog.
// All UI strings are localized via Localization.
