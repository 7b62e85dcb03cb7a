package model

// Package model defines the data shared between the floating overlay, the
// slide-back box and their hosts: the floating session handed over when a
// live stream is backgrounded, and the phase enums of both gesture state
// machines. Phases carry explicit transitions and human-readable names.
