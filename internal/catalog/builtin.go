package catalog

import "fmt"

// builtinSpecs is the application table the installer ships with. One row per
// application; per-platform fields hold a download URL or a package-manager
// token, and an empty field means the platform is unsupported.
var builtinSpecs = []AppSpec{
	{
		Name:    "7-Zip",
		Windows: "https://www.7-zip.org/a/7z2408-x64.exe",
		Linux:   "package:p7zip-full",
		Mac:     "brew:p7zip",
	},
	{
		Name:    "Visual Studio Code",
		Windows: "https://code.visualstudio.com/sha/download?build=stable&os=win32-x64-user",
		Linux:   "https://code.visualstudio.com/sha/download?build=stable&os=linux-deb-x64",
		Mac:     "https://code.visualstudio.com/sha/download?build=stable&os=darwin-universal",
	},
	{
		Name:    "Vim",
		Windows: "https://github.com/vim/vim-win32-installer/releases/download/v9.1.0000/gvim_9.1.0000_x64.exe",
		Linux:   "package:vim",
		Mac:     "brew:vim",
	},
	{
		Name:    "VLC Media Player",
		Windows: "https://get.videolan.org/vlc/3.0.21/win64/vlc-3.0.21-win64.exe",
		Linux:   "package:vlc",
		Mac:     "https://get.videolan.org/vlc/3.0.21/macosx/vlc-3.0.21-universal.dmg",
	},
	{
		Name:    "Java JDK",
		Windows: "https://download.oracle.com/java/21/latest/jdk-21_windows-x64_bin.exe",
		Linux:   "package:openjdk-21-jdk",
		Mac:     "brew:openjdk@21",
	},
	{
		Name:    "Steam",
		Windows: "https://cdn.akamai.steamstatic.com/client/installer/SteamSetup.exe",
		Linux:   "package:steam",
		Mac:     "https://cdn.akamai.steamstatic.com/client/installer/steam.dmg",
	},
	{
		Name:    "Spotify",
		Windows: "https://download.scdn.co/SpotifySetup.exe",
		Linux:   "snap:spotify",
		Mac:     "https://download.scdn.co/Spotify.dmg",
	},
	{
		Name:    "Firefox",
		Windows: "https://download.mozilla.org/?product=firefox-latest-ssl&os=win64&lang=en-US",
		Linux:   "package:firefox",
		Mac:     "https://download.mozilla.org/?product=firefox-latest-ssl&os=osx&lang=en-US",
	},
	{
		Name:    "Discord",
		Windows: "https://discord.com/api/downloads/distributions/app/installers/latest?channel=stable&platform=win&arch=x64",
		Linux:   "https://discord.com/api/download?platform=linux&format=deb",
		Mac:     "https://discord.com/api/download?platform=osx",
	},
}

// Builtin returns the catalog of applications the installer ships with. The
// table is static, so a parse failure here is a programming error.
func Builtin() *Catalog {
	c, err := New(builtinSpecs...)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid builtin table: %v", err))
	}
	return c
}
