// Package output renders a finished Santa's list for people and files.
//
// Three printing orders are supported:
//
//   - GivingOrder: cycle order, starting at the initial giver.
//   - FamilyOrder: the order participants appear in the registry (and hence in
//     the configuration file).
//   - AlphabeticalOrder: givers sorted by name.
//
// Every line reads "Giver → Receiver". Write sends the rendered list to a
// screen writer and/or a file; in append mode successive lists in one file are
// separated by a line of twenty '~' characters.
package output
