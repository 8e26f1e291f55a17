// Command marc-holdings converts the textual holdings statements (866) of MARC
// records into structured enumeration (863), caption (853) and physical
// description (007) fields.
//
// Usage:
//
//	marc-holdings convert serials.mrc --format marcxml
//	marc-holdings parse "1998: 1 (Jan), 2 (Feb)"
//	marc-holdings scan serials.mrc
//	marc-holdings config init
//
// For interactive mode, use marc-holdings-tui.
package main
