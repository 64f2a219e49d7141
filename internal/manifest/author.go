package manifest

import (
	"fmt"
)

// SetAuthor replaces the authors block of the manifest inside pkgDir with a
// single creator entry and saves the result. The manifest is re-validated
// before it is written back.
func SetAuthor(pkgDir, given, family, email string) error {
	path := Path(pkgDir)

	m, err := Load(path)
	if err != nil {
		return err
	}

	m.Authors = []Author{{
		Given:  given,
		Family: family,
		Email:  email,
		Role:   RoleCreator,
	}}

	if err := Save(path, m); err != nil {
		return fmt.Errorf("updating author metadata: %w", err)
	}
	return nil
}
