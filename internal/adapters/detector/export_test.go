package detector

// Detect exposes the environment decision for tests.
var Detect = detect
