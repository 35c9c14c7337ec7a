// SPDX-License-Identifier: MPL-2.0

// Package platform resolves the host shell used to run selector commands.
//
// POSIX hosts use /bin/sh -c. Windows uses the interpreter named by
// %COMSPEC% (cmd.exe when unset) with /C. An explicit override picks its
// arguments from the interpreter's base name.
package platform
