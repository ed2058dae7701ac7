package types

// Family is the category of packages sharing one manifest filename
// pattern and one normalization rule.
type Family string

const (
	FamilyBuildTools    Family = "build-tools"
	FamilyCmake         Family = "cmake"
	FamilyCmdlineTools  Family = "cmdline-tools"
	FamilyEmulator      Family = "emulator"
	FamilyM2Repository  Family = "m2repository"
	FamilyNDK           Family = "ndk"
	FamilyPlatforms     Family = "platforms"
	FamilyPlatformTools Family = "platform-tools"
	FamilySkiaparser    Family = "skiaparser"
	FamilyTools         Family = "tools"
)
