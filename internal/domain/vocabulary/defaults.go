package vocabulary

// DefaultTables returns the built-in vocabulary of the catalog.
func DefaultTables() Tables {
	return defaultBuilder().Tables()
}

// Default builds the registry from the built-in vocabulary.
func Default() (*Registry, error) {
	return defaultBuilder().Build()
}

func defaultBuilder() *Builder {
	entryProperties := []string{
		"Home", "Media", "Inspiration", "State", "Play", "Download", "Platform", "Keyword",
		"Code repository", "Code language", "Code license", "Code dependency", "Assets license", "Developer",
	}
	entryFields := append(append([]string{"File", "Title"}, entryProperties...), "Note", "Building")

	return NewBuilder().
		Schema(KindEntry, Schema{
			Valid:     entryFields,
			Essential: []string{"File", "Title", "Home", "State", "Keyword", "Code repository", "Code language", "Code license"},
			URL:       []string{"Home", "Media", "Play", "Download", "Code repository"},
		}).
		Schema(KindBuilding, Schema{
			Valid: []string{"Build system", "Build instruction", "Note"},
		}).
		Schema(KindDeveloper, Schema{
			Valid:     []string{"Name", "Games", "Home", "Contact", "Organization"},
			Essential: []string{"Name", "Games"},
			URL:       []string{"Home"},
		}).
		Schema(KindInspiration, Schema{
			Valid:     []string{"Name", "Inspired entries", "Media"},
			Essential: []string{"Name", "Inspired entries"},
			URL:       []string{"Media"},
		}).
		URLPrefixes("http://", "https://", "git://", "svn://", "ftp://", "bzr://").
		Platforms("Windows", "Linux", "macOS", "Android", "iOS", "Web").
		Keywords(
			"action", "arcade", "adventure", "visual novel", "sports", "platform", "puzzle", "role playing",
			"simulation", "strategy", "cards", "board", "music", "educational", "tool", "game engine",
			"framework", "library", "remake",
		).
		FrameworkKeywords("framework", "library", "tool").
		MultiplayerModes("competitive", "co-op", "hotseat", "LAN", "local", "massive", "matchmaking", "online", "split-screen").
		Languages(
			"AGS Script", "ActionScript", "Ada", "AngelScript", "Assembly", "Basic", "Blender Script", "BlitzMax",
			"C", "C#", "C++", "Clojure", "CoffeeScript", "ColdFusion", "D", "DM", "Dart", "Dia", "Elm",
			"Emacs Lisp", "F#", "GDScript", "Game Maker Script", "Go", "Groovy", "Haskell", "Haxe", "Io",
			"Java", "JavaScript", "Kotlin", "Lisp", "Lua", "MegaGlest Script", "MoonScript", "None", "OCaml",
			"Objective-C", "PHP", "Pascal", "Perl", "Python", "QuakeC", "R", "Ren'Py", "Ruby", "Rust",
			"Scala", "Scheme", "Script", "Shell", "Swift", "TorqueScript", "TypeScript", "Vala",
			"Visual Basic", "XUL", "ZenScript", "ooc", "?",
		).
		LanguageURL("AGS Script", "https://en.wikipedia.org/wiki/Adventure_Game_Studio").
		LanguageURL("ActionScript", "https://en.wikipedia.org/wiki/ActionScript").
		LanguageURL("Ada", "https://en.wikipedia.org/wiki/Ada_(programming_language)").
		LanguageURL("AngelScript", "https://en.wikipedia.org/wiki/AngelScript").
		LanguageURL("Assembly", "https://en.wikipedia.org/wiki/Assembly_language").
		LanguageURL("Basic", "https://en.wikipedia.org/wiki/BASIC").
		LanguageURL("Blender Script", "https://en.wikipedia.org/wiki/Blender_(software)").
		LanguageURL("BlitzMax", "https://en.wikipedia.org/wiki/Blitz_BASIC").
		LanguageURL("C", "https://en.wikipedia.org/wiki/C_(programming_language)").
		LanguageURL("C#", "https://en.wikipedia.org/wiki/C_Sharp_(programming_language)").
		LanguageURL("C++", "https://en.wikipedia.org/wiki/C%2B%2B").
		LanguageURL("Clojure", "https://en.wikipedia.org/wiki/Clojure").
		Licenses(
			"2-clause BSD", "3-clause BSD", "AFL-3.0", "AGPL-3.0", "Apache-2.0", "Artistic License-1.0",
			"Artistic License-2.0", "Boost-1.0", "CC-BY-NC-3.0", "CC-BY-NC-SA-2.0", "CC-BY-NC-SA-3.0",
			"CC-BY-SA-3.0", "CC-BY-NC-SA-4.0", "CC-BY-SA-4.0", "CC0", "Custom", "EPL-2.0", "GPL-2.0", "GPL-3.0",
			"IJG", "ISC", "Java Research License", "LGPL-2.0", "LGPL-2.1", "LGPL-3.0", "MAME", "MIT", "MPL-1.1",
			"MPL-2.0", "MS-PL", "MS-RL", "NetHack General Public License", "None", "Proprietary",
			"Public domain", "SWIG license", "Unlicense", "WTFPL", "wxWindows license", "zlib", "?",
		).
		LicenseFamily("2-clause BSD", "https://en.wikipedia.org/wiki/BSD_licenses#2-clause_license_(%22Simplified_BSD_License%22_or_%22FreeBSD_License%22)").
		LicenseFamily("3-clause BSD", "https://en.wikipedia.org/wiki/BSD_licenses#3-clause_license_(%22BSD_License_2.0%22,_%22Revised_BSD_License%22,_%22New_BSD_License%22,_or_%22Modified_BSD_License%22)").
		LicenseFamily("AFL", "https://en.wikipedia.org/wiki/Academic_Free_License").
		LicenseFamily("AGPL", "https://en.wikipedia.org/wiki/GNU_Affero_General_Public_License").
		LicenseFamily("Apache", "https://en.wikipedia.org/wiki/Apache_License").
		LicenseFamily("Artistic License", "https://en.wikipedia.org/wiki/Artistic_License").
		LicenseFamily("Boost", "https://en.wikipedia.org/wiki/Boost_(C%2B%2B_libraries)#License").
		LicenseFamily("CC", "https://en.wikipedia.org/wiki/Creative_Commons_license").
		LicenseFamily("EPL", "https://en.wikipedia.org/wiki/Eclipse_Public_License").
		LicenseFamily("GPL", "https://en.wikipedia.org/wiki/GNU_General_Public_License").
		LicenseFamily("IJG", "https://spdx.org/licenses/IJG.html").
		LicenseFamily("ISC", "https://en.wikipedia.org/wiki/ISC_license").
		LicenseFamily("Java Research License", "https://en.wikipedia.org/wiki/Java_Research_License").
		LicenseFamily("LGPL", "https://en.wikipedia.org/wiki/GNU_Lesser_General_Public_License").
		LicenseFamily("MAME", "https://docs.mamedev.org/license.html").
		LicenseFamily("MIT", "https://en.wikipedia.org/wiki/MIT_License").
		LicenseFamily("MPL", "https://en.wikipedia.org/wiki/Mozilla_Public_License").
		LicenseFamily("MS", "https://en.wikipedia.org/wiki/Shared_Source_Initiative#Microsoft_Public_License_(Ms-PL)").
		LicenseFamily("NetHack", "https://en.wikipedia.org/wiki/NetHack#Licensing,_ports,_and_derivative_ports").
		LicenseFamily("Public domain", "https://en.wikipedia.org/wiki/Public_domain").
		LicenseFamily("Unlicense", "https://en.wikipedia.org/wiki/Unlicense").
		LicenseFamily("WTFPL", "https://en.wikipedia.org/wiki/WTFPL").
		LicenseFamily("wxWindows", "https://en.wikipedia.org/wiki/WxWidgets#License").
		LicenseFamily("zlib", "https://en.wikipedia.org/wiki/Zlib_License").
		DependencyAliases("Simple DirectMedia Layer", "SDL", "SDL2").
		DependencyAliases("Simple and Fast Multimedia Library", "SFML").
		DependencyAliases("Boost (C++ Libraries)", "Boost").
		DependencyAliases("SGE Game Engine", "SGE").
		DependencyAliases("MegaGlest", "MegaGlest Engine").
		NoEntryDependency("OpenGL", "https://www.opengl.org/").
		NoEntryDependency("GLUT", "https://www.opengl.org/resources/libraries/").
		NoEntryDependency("WebGL", "https://www.khronos.org/webgl/").
		NoEntryDependency("Unity", "https://unity.com/solutions/game").
		NoEntryDependency(".NET", "https://dotnet.microsoft.com/").
		NoEntryDependency("Vulkan", "https://www.khronos.org/vulkan/").
		NoEntryDependency("KDE Frameworks", "https://kde.org/products/frameworks/").
		NoEntryDependency("jQuery", "https://jquery.com/").
		NoEntryDependency("node.js", "https://nodejs.org/en/").
		NoEntryDependency("GNU Guile", "https://www.gnu.org/software/guile/").
		NoEntryDependency("tkinter", "https://docs.python.org/3/library/tk.html")
}
