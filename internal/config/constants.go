package config

import "time"

// Base application details
const AppName = "jdiff"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "jdiff.log"
const DefaultDatabaseFileName = "jdiff.db"
const DefaultProjectName = "default"

// UI Layout
const StatusBarHeight = 1
const CommandBarHeight = 1
const TabBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultHistoryLimit = 100
const DefaultMaxEditors = 2
const DefaultTickRate = 250 * time.Millisecond
const DefaultAutosaveDelay = 2 * time.Second

// Theme
const DefaultThemeName = "Jdiff Dark"
