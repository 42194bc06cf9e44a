package restcountries

import (
	"io"

	"countries/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DecodeCountries decodes a REST Countries v3.1 response body, a JSON array of
// country objects. Unknown fields are skipped and null optional fields are
// treated as absent. Object-valued fields (nativeName, currencies, languages)
// keep the key order of the payload.
func DecodeCountries(b []byte) (domain.CountryList, error) {
	d := jx.DecodeBytes(b)
	out := domain.CountryList{}
	if err := d.Arr(func(d *jx.Decoder) error {
		var c domain.Country
		if err := decodeCountry(d, &c); err != nil {
			return errors.Wrapf(err, "country #%d", len(out))
		}
		out = append(out, c)

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode countries")
	}
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode countries: unexpected trailing data")
	}

	return out, nil
}

func decodeCountry(d *jx.Decoder, c *domain.Country) error {
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			err = decodeName(d, c)
		case "cca3":
			c.Code, err = optStr(d)
		case "population":
			c.Population, err = optInt64(d)
		case "region":
			c.Region, err = optStr(d)
		case "subregion":
			c.Subregion, err = optStr(d)
		case "capital":
			c.Capital, err = optStrs(d)
		case "flags":
			c.FlagURL, err = decodeFlag(d)
		case "tld":
			c.TLD, err = optStrs(d)
		case "currencies":
			c.Currencies, err = decodeCurrencies(d)
		case "languages":
			c.Languages, err = decodeLanguages(d)
		case "borders":
			c.Borders, err = optStrs(d)
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	}); err != nil {
		return err //nolint: wrapcheck
	}
	if c.Name == "" {
		return errors.New("missing name.common")
	}
	if c.Population < 0 {
		return errors.Errorf("negative population %d", c.Population)
	}

	return nil
}

func decodeName(d *jx.Decoder, c *domain.Country) error {
	if d.Next() == jx.Null {
		return d.Null()
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "common":
			c.Name, err = optStr(d)
		case "official":
			c.OfficialName, err = optStr(d)
		case "nativeName":
			c.NativeNames, err = decodeNativeNames(d)
		default:
			err = d.Skip()
		}

		return err
	})
}

func decodeNativeNames(d *jx.Decoder) ([]domain.NativeName, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var out []domain.NativeName
	err := d.Obj(func(d *jx.Decoder, locale string) error {
		n := domain.NativeName{Locale: locale}
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "common":
				n.Common, err = optStr(d)
			case "official":
				n.Official, err = optStr(d)
			default:
				err = d.Skip()
			}

			return err
		}); err != nil {
			return err
		}
		out = append(out, n)

		return nil
	})

	return out, err
}

func decodeFlag(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	var svg, png string
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "svg":
			svg, err = optStr(d)
		case "png":
			png, err = optStr(d)
		default:
			err = d.Skip()
		}

		return err
	})
	if svg == "" {
		return png, err
	}

	return svg, err
}

func decodeCurrencies(d *jx.Decoder) ([]domain.Currency, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var out []domain.Currency
	err := d.Obj(func(d *jx.Decoder, code string) error {
		cur := domain.Currency{Code: code}
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "name":
				cur.Name, err = optStr(d)
			case "symbol":
				cur.Symbol, err = optStr(d)
			default:
				err = d.Skip()
			}

			return err
		}); err != nil {
			return err
		}
		out = append(out, cur)

		return nil
	})

	return out, err
}

func decodeLanguages(d *jx.Decoder) ([]domain.Language, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var out []domain.Language
	err := d.Obj(func(d *jx.Decoder, code string) error {
		name, err := optStr(d)
		if err != nil {
			return err
		}
		out = append(out, domain.Language{Code: code, Name: name})

		return nil
	})

	return out, err
}

func optStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

func optInt64(d *jx.Decoder) (int64, error) {
	if d.Next() == jx.Null {
		return 0, d.Null()
	}

	return d.Int64()
}

func optStrs(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var out []string
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := optStr(d)
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})

	return out, err
}
