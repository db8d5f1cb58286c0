package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It hosts the link and upload forms, renders result cards and transient
// notifications, and hands submissions to the submit controller.
// All UI strings are localized via i18n.Localization.
