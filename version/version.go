package version

// Version contains the platform library version number.
var Version = "0.3"
