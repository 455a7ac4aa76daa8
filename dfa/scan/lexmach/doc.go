/*
Package lexmach provides a lexmachine-backed word scanner for automaton
definition lines. It is a drop-in alternative to the default word scanner
of package scan.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
