package geodesy

var UTMConverterFor = utmConverterFor
