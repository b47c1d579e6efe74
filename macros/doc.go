/*

The macros package can be used to expand C-style object macros in a
text. Any line containing the definition marker ("#define" by default)
defines a macro: the second word on the line is the macro name and the third
is its value. You construct the Expander object and then call Expand on the
text (or ExpandFile on a file). Every occurrence of a macro name that stands
as a whole word anywhere in the text, including in the definition lines, is
replaced with its value.

The macros are applied one after another in the order they are defined, each
over the whole of the text as it stands after the previous one. This means
that a value inserted by one macro may itself be replaced by a later
one. There is no other recursive expansion and no function-like macros.

Macros can also be set directly, with Predefine or AddMacro, and these are
applied before any defined in the text.

*/
package macros
