package ports

import "sdkmanager/internal/types"

type IndexCachePort interface {
	Write(path string, index types.PackageIndex) error
	Read(path string) (types.PackageIndex, error)
}
