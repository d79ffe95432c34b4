package persistent

// Get returns *field once obj's state is available.
// field must point into obj.
func Get[T any](obj Object, field *T) (T, error) {
	if err := obj.persistent().PAccess(); err != nil {
		var zero T
		return zero, err
	}
	return *field, nil
}

// Set stores value into *field and marks obj changed.
// field must point into obj. If obj can not be loaded,
// or its jar refuses the change, the field is left untouched.
func Set[T any](obj Object, field *T, value T) error {
	if err := obj.persistent().PModify(); err != nil {
		return err
	}
	*field = value
	return nil
}
